package openapi

import "maps"

// NewComponents creates Components with the shared error schemas and
// responses every API operation can reference.
func NewComponents() *Components {
	detail := &Schema{
		Type: "object",
		Properties: map[string]*Schema{
			"detail": {Type: "string", Description: "Error message"},
		},
		Required: []string{"detail"},
	}

	return &Components{
		Schemas: map[string]*Schema{
			"Detail": detail,
			"FieldError": {
				Type: "object",
				Properties: map[string]*Schema{
					"loc":  {Type: "array", Items: &Schema{Type: "string"}, Example: []string{"body", "title"}},
					"msg":  {Type: "string", Example: "Field required"},
					"type": {Type: "string", Example: "missing"},
				},
				Required: []string{"loc", "msg", "type"},
			},
			"ValidationError": {
				Type: "object",
				Properties: map[string]*Schema{
					"detail": {Type: "array", Items: SchemaRef("FieldError")},
				},
				Required: []string{"detail"},
			},
		},
		Responses: map[string]*Response{
			"BadRequest":      ResponseJSON("Invalid reference", "Detail"),
			"NotFound":        ResponseJSON("Resource not found", "Detail"),
			"ValidationError": ResponseJSON("Request body failed validation", "ValidationError"),
		},
	}
}

// AddSchemas merges the given schemas into the component schemas.
func (c *Components) AddSchemas(schemas map[string]*Schema) {
	maps.Copy(c.Schemas, schemas)
}

// AddResponses merges the given responses into the component responses.
func (c *Components) AddResponses(responses map[string]*Response) {
	maps.Copy(c.Responses, responses)
}
