package question

import "github.com/santhosh-tekuri/jsonschema/v5"

const setSchemaURL = "question_set.schema.json"

const setSchemaJSON = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "array",
  "minItems": 3,
  "maxItems": 3,
  "items": {
    "type": "object",
    "required": ["text", "choices", "answer"],
    "additionalProperties": false,
    "properties": {
      "text": { "type": "string", "minLength": 1 },
      "choices": {
        "type": "array",
        "minItems": 4,
        "maxItems": 4,
        "items": { "type": "string", "minLength": 1 }
      },
      "answer": { "type": "integer", "minimum": 0, "maximum": 3 }
    }
  }
}`

var setSchema = jsonschema.MustCompileString(setSchemaURL, setSchemaJSON)
