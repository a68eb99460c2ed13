package rules

const schema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "additionalProperties": false,
  "properties": {
    "board": {
      "type": "object",
      "additionalProperties": false,
      "properties": {
        "radius": {"type": "integer", "minimum": 1, "maximum": 32},
        "hex_size": {"type": "number", "exclusiveMinimum": 0},
        "hex_gap": {"type": "number", "minimum": 0},
        "background_scale": {"type": "number", "minimum": 0}
      }
    },
    "capture": {
      "type": "object",
      "additionalProperties": false,
      "properties": {
        "threshold": {"type": "integer", "minimum": 1}
      }
    },
    "economy": {
      "type": "object",
      "additionalProperties": false,
      "properties": {
        "starting_coins": {"type": "integer", "minimum": 0},
        "stipend": {"type": "integer", "minimum": 0},
        "tile_income": {"type": "integer", "minimum": 0}
      }
    }
  }
}`
