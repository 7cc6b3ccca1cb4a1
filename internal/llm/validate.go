package llm

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// compiledSchemas holds compiled schemas keyed by a digest of their
// definition, so two question schemas for different counts never share an
// entry even when they carry the same name.
var compiledSchemas sync.Map // map[string]*jsonschema.Schema

// ValidateReply checks that a model reply is JSON matching schema. Failures
// are returned as *ErrMalformedReply. A nil schema accepts any reply.
func ValidateReply(schema *Schema, reply string) error {
	if schema == nil {
		return nil
	}

	var doc any
	if err := json.Unmarshal([]byte(reply), &doc); err != nil {
		return &ErrMalformedReply{Reply: reply, Err: fmt.Errorf("not JSON: %w", err)}
	}

	compiled, err := compileSchema(schema)
	if err != nil {
		return err
	}
	if err := compiled.Validate(doc); err != nil {
		return &ErrMalformedReply{Reply: reply, Err: fmt.Errorf("does not match %s: %w", schema.Name, err)}
	}
	return nil
}

func compileSchema(schema *Schema) (*jsonschema.Schema, error) {
	raw, err := json.Marshal(schema.Definition)
	if err != nil {
		return nil, fmt.Errorf("schema %s: %w", schema.Name, err)
	}
	sum := sha256.Sum256(raw)
	key := hex.EncodeToString(sum[:])
	if cached, ok := compiledSchemas.Load(key); ok {
		return cached.(*jsonschema.Schema), nil
	}

	// The compiler wants a decoded JSON value, not a Go map with typed slices.
	def, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("schema %s: %w", schema.Name, err)
	}
	url := "mem://quiz/" + key + ".json"
	c := jsonschema.NewCompiler()
	if err := c.AddResource(url, def); err != nil {
		return nil, fmt.Errorf("schema %s: %w", schema.Name, err)
	}
	compiled, err := c.Compile(url)
	if err != nil {
		return nil, fmt.Errorf("schema %s: %w", schema.Name, err)
	}

	compiledSchemas.Store(key, compiled)
	return compiled, nil
}
