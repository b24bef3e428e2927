package apiv1

import (
	"testing"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/stretchr/testify/assert"
)

func TestOpenAPIDocumentIsValid(t *testing.T) {
	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromFile("../../../public/docs/v1/openapi.yml")
	assert.NoError(t, err)
	assert.NoError(t, doc.Validate(loader.Context))

	for _, path := range []string{
		"/webhook/sales",
		"/api/v1/referrers/{code}",
		"/api/v1/stats",
	} {
		assert.NotNil(t, doc.Paths.Find(path), "missing path %s", path)
	}
}
