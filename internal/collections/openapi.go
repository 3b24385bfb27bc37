package collections

import "github.com/JaimeStill/promptlab/pkg/openapi"

type spec struct {
	List    *openapi.Operation
	Find    *openapi.Operation
	Prompts *openapi.Operation
	Create  *openapi.Operation
	Delete  *openapi.Operation
}

var idParam = openapi.PathParam("id", "Collection id")

var specs = spec{
	List: &openapi.Operation{
		Summary: "List collections",
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Collection list", "CollectionList"),
		},
	},
	Find: &openapi.Operation{
		Summary:    "Get a collection",
		Parameters: []*openapi.Parameter{idParam},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Collection", "Collection"),
			404: openapi.ResponseRef("NotFound"),
		},
	},
	Prompts: &openapi.Operation{
		Summary:    "List a collection's prompts",
		Parameters: []*openapi.Parameter{idParam},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Prompts in the collection, newest first", "PromptList"),
			404: openapi.ResponseRef("NotFound"),
		},
	},
	Create: &openapi.Operation{
		Summary:     "Create a collection",
		RequestBody: openapi.RequestBodyJSON("CollectionCreate", true),
		Responses: map[int]*openapi.Response{
			201: openapi.ResponseJSON("Created collection", "Collection"),
			422: openapi.ResponseRef("ValidationError"),
		},
	},
	Delete: &openapi.Operation{
		Summary:     "Delete a collection",
		Description: "Prompts in the collection are kept with collection_id set to null.",
		Parameters:  []*openapi.Parameter{idParam},
		Responses: map[int]*openapi.Response{
			204: openapi.ResponseNoContent("Collection deleted"),
			404: openapi.ResponseRef("NotFound"),
		},
	},
}

// Schemas returns the component schemas referenced by collection operations.
func Schemas() map[string]*openapi.Schema {
	nameLen, descLen := 100, 500
	one := 1

	return map[string]*openapi.Schema{
		"Collection": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"id":          {Type: "string", ReadOnly: true},
				"name":        {Type: "string", MinLength: &one, MaxLength: &nameLen},
				"description": openapi.Nullable("string"),
				"created_at":  {Type: "string", Format: "date-time", ReadOnly: true},
			},
			Required: []string{"id", "name", "description", "created_at"},
		},
		"CollectionCreate": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"name":        {Type: "string", MinLength: &one, MaxLength: &nameLen},
				"description": {Type: []string{"string", "null"}, MaxLength: &descLen},
			},
			Required: []string{"name"},
		},
		"CollectionList": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"collections": {Type: "array", Items: openapi.SchemaRef("Collection")},
				"total":       {Type: "integer"},
			},
			Required: []string{"collections", "total"},
		},
	}
}
