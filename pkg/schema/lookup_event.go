package schema

const LookupEventSchemaTextV1 = `{
	"type": "record",
	"namespace": "stocks",
	"name": "lookup_event",
	"fields": [
		{"name": "product_code", "type": "string"},
		{"name": "lines", "type": {
			"type": "array",
			"items": {
				"type": "record",
				"name": "stock_line",
				"fields": [
					{"name": "location_code", "type": "string"},
					{"name": "qty", "type": "long"}
				]
			}
		}},
		{"name": "looked_up_at", "type": "long"}
	]
}`

type (
	LookupEventV1 struct {
		ProductCode string        `avro:"product_code"`
		Lines       []StockLineV1 `avro:"lines"`
		// unix milliseconds
		LookedUpAt int64 `avro:"looked_up_at"`
	}

	StockLineV1 struct {
		LocationCode string `avro:"location_code"`
		Qty          int64  `avro:"qty"`
	}
)
