package prompt

import "github.com/wayplan/wayplan/pkg/llm"

// Structured-output schemas for the built-in agents. Every schema that
// references nodes forces operations onto exact existing IDs via the
// canonical pattern; the model is never allowed to invent ID shapes.

const canonicalIDPattern = `^day[0-9]+_node[0-9]+$`

// SkeletonSchema shapes the day scaffold the planner returns. Node IDs
// are absent on purpose: the change engine allocates canonical IDs when
// the scaffold is committed as inserts.
var SkeletonSchema = llm.MustCompileSchema(`{
	"$schema": "https://json-schema.org/draft/2020-12/schema",
	"type": "object",
	"required": ["days"],
	"additionalProperties": false,
	"properties": {
		"days": {
			"type": "array",
			"minItems": 1,
			"items": {
				"type": "object",
				"required": ["day", "nodes"],
				"additionalProperties": false,
				"properties": {
					"day": {"type": "integer", "minimum": 1},
					"location": {"type": "string"},
					"pace": {"type": "string"},
					"timeWindowStart": {"type": "string"},
					"timeWindowEnd": {"type": "string"},
					"nodes": {
						"type": "array",
						"items": {
							"type": "object",
							"required": ["type", "title"],
							"additionalProperties": false,
							"properties": {
								"type": {"enum": ["attraction", "meal", "transport", "hotel", "freetime"]},
								"title": {"type": "string"},
								"startTime": {"type": "string"},
								"endTime": {"type": "string"}
							}
						}
					}
				}
			}
		}
	}
}`)

// PopulatorSchema shapes the per-node fills returned by the activity,
// meal, and transport agents. Each update targets one of the IDs the
// prompt listed.
var PopulatorSchema = llm.MustCompileSchema(`{
	"$schema": "https://json-schema.org/draft/2020-12/schema",
	"type": "object",
	"required": ["updates"],
	"additionalProperties": false,
	"properties": {
		"updates": {
			"type": "array",
			"items": {
				"type": "object",
				"required": ["id", "title"],
				"additionalProperties": false,
				"properties": {
					"id": {"type": "string", "pattern": "` + canonicalIDPattern + `"},
					"title": {"type": "string"},
					"location": {
						"type": "object",
						"additionalProperties": false,
						"properties": {
							"name": {"type": "string"},
							"address": {"type": "string"},
							"lat": {"type": "number"},
							"lng": {"type": "number"}
						}
					},
					"startTime": {"type": "string"},
					"endTime": {"type": "string"},
					"cost": {"type": "number", "minimum": 0},
					"tips": {"type": "array", "items": {"type": "string"}}
				}
			}
		}
	}
}`)

// EnrichmentSchema shapes the metadata additions of the enrichment agent.
var EnrichmentSchema = llm.MustCompileSchema(`{
	"$schema": "https://json-schema.org/draft/2020-12/schema",
	"type": "object",
	"required": ["enrichments"],
	"additionalProperties": false,
	"properties": {
		"enrichments": {
			"type": "array",
			"items": {
				"type": "object",
				"required": ["id"],
				"additionalProperties": false,
				"properties": {
					"id": {"type": "string", "pattern": "` + canonicalIDPattern + `"},
					"tips": {"type": "array", "items": {"type": "string"}},
					"labels": {"type": "array", "items": {"type": "string"}},
					"links": {"type": "array", "items": {"type": "string", "format": "uri"}}
				}
			}
		}
	}
}`)

// ClassifySchema shapes the intent classifier output.
var ClassifySchema = llm.MustCompileSchema(`{
	"$schema": "https://json-schema.org/draft/2020-12/schema",
	"type": "object",
	"required": ["intent"],
	"additionalProperties": false,
	"properties": {
		"intent": {"enum": ["edit", "question", "chatter"]},
		"day": {"type": "integer", "minimum": 1},
		"nodeIds": {"type": "array", "items": {"type": "string", "pattern": "` + canonicalIDPattern + `"}},
		"operation": {"enum": ["add", "remove", "move", "change", "lock", "other"]},
		"reply": {"type": "string"}
	}
}`)

// ChangeSetSchema shapes the editor output: the exact wire form the
// change engine consumes. Node-targeting operations must carry an ID in
// canonical form; the engine then resolves it strictly.
var ChangeSetSchema = llm.MustCompileSchema(`{
	"$schema": "https://json-schema.org/draft/2020-12/schema",
	"type": "object",
	"required": ["scope", "ops"],
	"additionalProperties": false,
	"properties": {
		"scope": {"enum": ["day", "trip"]},
		"day": {"type": "integer", "minimum": 1},
		"preferences": {
			"type": "object",
			"additionalProperties": false,
			"properties": {
				"userFirst": {"type": "boolean"},
				"respectLocks": {"type": "boolean"},
				"preserveTiming": {"type": "boolean"}
			}
		},
		"ops": {
			"type": "array",
			"items": {
				"type": "object",
				"required": ["op"],
				"properties": {
					"op": {"enum": ["insert", "replace", "delete", "move", "update"]},
					"id": {"type": "string", "pattern": "` + canonicalIDPattern + `"},
					"after": {"type": "string", "pattern": "` + canonicalIDPattern + `"},
					"day": {"type": "integer", "minimum": 1},
					"toDay": {"type": "integer", "minimum": 1},
					"position": {"type": "integer", "minimum": 0},
					"node": {
						"type": "object",
						"properties": {
							"type": {"enum": ["attraction", "meal", "transport", "hotel", "freetime"]},
							"title": {"type": "string"},
							"location": {
								"type": "object",
								"properties": {
									"name": {"type": "string"},
									"address": {"type": "string"},
									"lat": {"type": "number"},
									"lng": {"type": "number"}
								}
							},
							"startTime": {"type": "string"},
							"endTime": {"type": "string"},
							"cost": {"type": "number", "minimum": 0},
							"tips": {"type": "array", "items": {"type": "string"}},
							"links": {"type": "array", "items": {"type": "string"}}
						}
					},
					"fields": {
						"type": "object",
						"properties": {
							"labels": {"type": "array", "items": {"type": "string"}},
							"addLabels": {"type": "array", "items": {"type": "string"}},
							"locked": {"type": "boolean"},
							"bookingRef": {"type": "string"},
							"cost": {"type": "number", "minimum": 0},
							"links": {"type": "array", "items": {"type": "string"}}
						}
					}
				}
			}
		}
	}
}`)
