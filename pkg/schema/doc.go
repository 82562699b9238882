// Package schema validates decoded module inputs against declared types.
//
// The type system mirrors what the input envelope can carry: string, int,
// float, bool and flat arrays of those. Schemas map input names to types and
// are usually loaded from a small YAML or JSON file:
//
//	inputs:
//	  input_image: string
//	  threshold: int
//	  weights: "[float]"
//
// Programmatic construction works the same way:
//
//	s := schema.Schema{
//	    "input_image": schema.String(),
//	    "threshold":   schema.Int(),
//	    "weights":     schema.Slice(schema.Float()),
//	}
//
//	if err := schema.Validate(s, env.Values()); err != nil {
//	    for _, e := range schema.ValidationErrors(err) {
//	        log.Println(e)
//	    }
//	}
//
// Values are expected in the shape encoding/json produces with UseNumber,
// so numbers arrive as json.Number; native Go numbers are accepted too.
package schema
