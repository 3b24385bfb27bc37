package prompts

import "github.com/JaimeStill/promptlab/pkg/openapi"

type spec struct {
	List   *openapi.Operation
	Find   *openapi.Operation
	Create *openapi.Operation
	Update *openapi.Operation
	Patch  *openapi.Operation
	Delete *openapi.Operation
}

var idParam = openapi.PathParam("id", "Prompt id")

var specs = spec{
	List: &openapi.Operation{
		Summary:     "List prompts",
		Description: "Returns prompts newest first. Filters compose: collection, then search.",
		Parameters: []*openapi.Parameter{
			openapi.QueryParam("collection_id", "string", "Only prompts in this collection", false),
			openapi.QueryParam("search", "string", "Case-insensitive match on title or description", false),
		},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Prompt list", "PromptList"),
		},
	},
	Find: &openapi.Operation{
		Summary:    "Get a prompt",
		Parameters: []*openapi.Parameter{idParam},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Prompt", "Prompt"),
			404: openapi.ResponseRef("NotFound"),
		},
	},
	Create: &openapi.Operation{
		Summary:     "Create a prompt",
		RequestBody: openapi.RequestBodyJSON("PromptCreate", true),
		Responses: map[int]*openapi.Response{
			201: openapi.ResponseJSON("Created prompt", "Prompt"),
			400: openapi.ResponseRef("BadRequest"),
			422: openapi.ResponseRef("ValidationError"),
		},
	},
	Update: &openapi.Operation{
		Summary:     "Replace a prompt",
		Description: "Fields omitted from the body keep their stored values. Null clears description or collection_id.",
		Parameters:  []*openapi.Parameter{idParam},
		RequestBody: openapi.RequestBodyJSON("PromptUpdate", true),
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Updated prompt", "Prompt"),
			400: openapi.ResponseRef("BadRequest"),
			404: openapi.ResponseRef("NotFound"),
			422: openapi.ResponseRef("ValidationError"),
		},
	},
	Patch: &openapi.Operation{
		Summary:     "Partially update a prompt",
		Description: "Only fields present in the body are applied. Null clears description or collection_id.",
		Parameters:  []*openapi.Parameter{idParam},
		RequestBody: openapi.RequestBodyJSON("PromptUpdate", true),
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Updated prompt", "Prompt"),
			400: openapi.ResponseRef("BadRequest"),
			404: openapi.ResponseRef("NotFound"),
			422: openapi.ResponseRef("ValidationError"),
		},
	},
	Delete: &openapi.Operation{
		Summary:    "Delete a prompt",
		Parameters: []*openapi.Parameter{idParam},
		Responses: map[int]*openapi.Response{
			204: openapi.ResponseNoContent("Prompt deleted"),
			404: openapi.ResponseRef("NotFound"),
		},
	},
}

func intPtr(n int) *int { return &n }

// Schemas returns the component schemas referenced by prompt operations.
func Schemas() map[string]*openapi.Schema {
	return map[string]*openapi.Schema{
		"Prompt": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"id":            {Type: "string", ReadOnly: true},
				"title":         {Type: "string", MinLength: intPtr(1), MaxLength: intPtr(200)},
				"content":       {Type: "string", MinLength: intPtr(1)},
				"description":   openapi.Nullable("string"),
				"collection_id": openapi.Nullable("string"),
				"variables":     {Type: "array", Items: &openapi.Schema{Type: "string"}, ReadOnly: true},
				"created_at":    {Type: "string", Format: "date-time", ReadOnly: true},
				"updated_at":    {Type: "string", Format: "date-time", ReadOnly: true},
			},
			Required: []string{"id", "title", "content", "description", "collection_id", "variables", "created_at", "updated_at"},
		},
		"PromptCreate": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"title":         {Type: "string", MinLength: intPtr(1), MaxLength: intPtr(200)},
				"content":       {Type: "string", MinLength: intPtr(1)},
				"description":   {Type: []string{"string", "null"}, MaxLength: intPtr(500)},
				"collection_id": openapi.Nullable("string"),
			},
			Required: []string{"title", "content"},
		},
		"PromptUpdate": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"title":         {Type: "string", MinLength: intPtr(1), MaxLength: intPtr(200)},
				"content":       {Type: "string", MinLength: intPtr(1)},
				"description":   {Type: []string{"string", "null"}, MaxLength: intPtr(500)},
				"collection_id": openapi.Nullable("string"),
			},
		},
		"PromptList": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"prompts": {Type: "array", Items: openapi.SchemaRef("Prompt")},
				"total":   {Type: "integer"},
			},
			Required: []string{"prompts", "total"},
		},
	}
}
