package layout

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// ErrInvalidCollection indicates persisted layout data failed validation.
var ErrInvalidCollection = errors.New("invalid layout collection")

const collectionSchemaURL = "https://gridboard.dev/schema/layouts.json"

// collectionSchema describes the persisted array of layouts.
const collectionSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "array",
  "items": { "$ref": "#/$defs/page" },
  "$defs": {
    "widget": {
      "type": "object",
      "required": ["i", "widgetID", "x", "y", "w", "h"],
      "properties": {
        "i": { "type": "string", "minLength": 1 },
        "widgetID": { "type": "string" },
        "name": { "type": "string" },
        "x": { "type": "integer", "minimum": 0 },
        "y": { "type": "integer", "minimum": 0 },
        "w": { "type": "integer", "minimum": 1 },
        "h": { "type": "integer", "minimum": 1 }
      }
    },
    "grid": {
      "type": ["array", "null"],
      "items": { "$ref": "#/$defs/widget" }
    },
    "tab": {
      "type": "object",
      "required": ["id", "name", "grid"],
      "properties": {
        "id": { "type": "string", "minLength": 1 },
        "name": { "type": "string" },
        "grid": { "$ref": "#/$defs/grid" }
      }
    },
    "page": {
      "type": "object",
      "required": ["id", "page", "name", "grid"],
      "properties": {
        "id": { "type": "string", "minLength": 1 },
        "page": { "type": "string" },
        "name": { "type": "string" },
        "default": { "type": "boolean" },
        "grid": { "$ref": "#/$defs/grid" },
        "hasTabs": { "type": "boolean" },
        "tabs": {
          "type": ["array", "null"],
          "items": { "$ref": "#/$defs/tab" }
        }
      }
    }
  }
}`

var (
	compileOnce sync.Once
	compiled    *jsonschema.Schema
	compileErr  error
)

func schema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader([]byte(collectionSchema)))
		if err != nil {
			compileErr = fmt.Errorf("failed to parse layout schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource(collectionSchemaURL, doc); err != nil {
			compileErr = fmt.Errorf("failed to add layout schema: %w", err)
			return
		}
		compiled, compileErr = c.Compile(collectionSchemaURL)
	})
	return compiled, compileErr
}

// Validate checks raw JSON against the layout collection schema.
func Validate(data []byte) error {
	sch, err := schema()
	if err != nil {
		return err
	}
	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidCollection, err)
	}
	if err := sch.Validate(inst); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidCollection, err)
	}
	return nil
}

// DecodePages validates and decodes a persisted layout collection.
func DecodePages(data []byte) ([]Page, error) {
	if err := Validate(data); err != nil {
		return nil, err
	}
	var pages []Page
	if err := json.Unmarshal(data, &pages); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCollection, err)
	}
	if pages == nil {
		pages = []Page{}
	}
	return pages, nil
}

// EncodePages serializes a layout collection. A nil collection encodes as
// an empty array.
func EncodePages(pages []Page) ([]byte, error) {
	if pages == nil {
		pages = []Page{}
	}
	data, err := json.Marshal(pages)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal layouts: %w", err)
	}
	return data, nil
}
