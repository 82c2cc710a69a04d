package api

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/cuppalabs/cuppa/internal/spec/schema"
	"github.com/cuppalabs/cuppa/internal/typeconv"
)

// Supported HTTP methods, in emission order.
var supportedMethods = []string{"get", "post", "put", "delete", "patch"}

// BuildParsedAPI converts an OpenAPI v3 document into a ParsedAPI.
func BuildParsedAPI(ctx context.Context, doc *openapi3.T) (*ParsedAPI, error) {
	_ = ctx
	if doc == nil {
		return nil, fmt.Errorf("api: nil document")
	}

	out := &ParsedAPI{}
	if doc.Info != nil {
		out.Name = strings.TrimSpace(doc.Info.Title)
		out.Version = strings.TrimSpace(doc.Info.Version)
	}
	if out.Name == "" {
		out.Name = "API"
	}
	if len(doc.Servers) > 0 && doc.Servers[0] != nil {
		out.BaseURL = strings.TrimSpace(doc.Servers[0].URL)
	}

	// Paths, sorted for determinism.
	pathKeys := make([]string, 0, len(doc.Paths))
	for p := range doc.Paths {
		pathKeys = append(pathKeys, p)
	}
	sort.Strings(pathKeys)

	seenIDs := make(map[string]int)
	for _, p := range pathKeys {
		item := doc.Paths[p]
		if item == nil {
			continue
		}
		for _, method := range supportedMethods {
			op := operationFor(item, method)
			if op == nil {
				continue
			}
			ep := buildEndpoint(method, p, item, op)
			ep.OperationID = uniqueID(seenIDs, ep.OperationID)
			out.Endpoints = append(out.Endpoints, ep)
		}
	}

	out.Models = buildModels(doc)
	return out, nil
}

func operationFor(item *openapi3.PathItem, method string) *openapi3.Operation {
	switch method {
	case "get":
		return item.Get
	case "post":
		return item.Post
	case "put":
		return item.Put
	case "delete":
		return item.Delete
	case "patch":
		return item.Patch
	}
	return nil
}

func buildEndpoint(method, path string, item *openapi3.PathItem, op *openapi3.Operation) ParsedEndpoint {
	ep := ParsedEndpoint{
		Method:      method,
		Path:        path,
		OperationID: strings.TrimSpace(op.OperationID),
		Summary:     strings.TrimSpace(op.Summary),
	}
	if ep.OperationID == "" {
		ep.OperationID = deriveOperationID(method, path)
	}
	for _, t := range op.Tags {
		if t = strings.TrimSpace(t); t != "" {
			ep.Tags = append(ep.Tags, t)
		}
	}

	// Merge path-level shared parameters with operation-level ones;
	// operation-level wins on the same (location, name) key.
	merged := make(map[string]*openapi3.Parameter)
	var order []string
	add := func(pref *openapi3.ParameterRef) {
		if pref == nil || pref.Value == nil {
			return
		}
		key := pref.Value.In + ":" + pref.Value.Name
		if _, ok := merged[key]; !ok {
			order = append(order, key)
		}
		merged[key] = pref.Value
	}
	for _, pref := range item.Parameters {
		add(pref)
	}
	for _, pref := range op.Parameters {
		add(pref)
	}

	for _, key := range order {
		p := merged[key]
		typ, isArray := resolveSchemaType(p.Schema)
		param := Parameter{
			Name:        p.Name,
			Required:    p.Required,
			SourceType:  typ,
			Array:       isArray,
			Description: strings.TrimSpace(p.Description),
		}
		switch p.In {
		case "path":
			ep.PathParams = append(ep.PathParams, param)
		case "query":
			ep.QueryParams = append(ep.QueryParams, param)
		case "header":
			ep.HeaderParams = append(ep.HeaderParams, param)
		}
		// Cookie parameters fall through on purpose: they are not surfaced
		// into any bucket.
	}

	if op.RequestBody != nil && op.RequestBody.Value != nil {
		if mime, sref := firstContent(op.RequestBody.Value.Content); sref != nil || mime != "" {
			typ, isArray := resolveSchemaType(sref)
			ep.RequestBody = &Body{
				ContentType: mime,
				SourceType:  typ,
				Array:       isArray,
				Required:    op.RequestBody.Value.Required,
			}
		}
	}

	if op.Responses != nil {
		codes := make([]string, 0, len(op.Responses))
		for code := range op.Responses {
			codes = append(codes, code)
		}
		sort.Strings(codes)
		for _, code := range codes {
			rref := op.Responses[code]
			if rref == nil || rref.Value == nil {
				continue
			}
			resp := Response{Status: code}
			if rref.Value.Description != nil {
				resp.Description = strings.TrimSpace(*rref.Value.Description)
			}
			if mime, sref := firstContent(rref.Value.Content); sref != nil || mime != "" {
				resp.ContentType = mime
				resp.SourceType, resp.Array = resolveSchemaType(sref)
			}
			ep.Responses = append(ep.Responses, resp)
		}
	}

	return ep
}

// firstContent picks the first declared content type (by sorted mime) and its
// schema. Further content types per status are dropped.
func firstContent(content openapi3.Content) (string, *openapi3.SchemaRef) {
	if len(content) == 0 {
		return "", nil
	}
	mimes := make([]string, 0, len(content))
	for m := range content {
		mimes = append(mimes, m)
	}
	sort.Strings(mimes)
	mt := content[mimes[0]]
	if mt == nil {
		return mimes[0], nil
	}
	return mimes[0], mt.Schema
}

// resolveSchemaType resolves a schema reference to a source type name.
// References resolve to their trailing path segment; arrays recurse into
// items; inline objects resolve to their literal type string.
func resolveSchemaType(ref *openapi3.SchemaRef) (string, bool) {
	if ref == nil {
		return "any", false
	}
	if ref.Ref != "" {
		return refName(ref.Ref), false
	}
	if ref.Value == nil {
		return "any", false
	}
	if ref.Value.Type == "array" {
		items := ref.Value.Items
		if items == nil {
			return "any", true
		}
		if items.Ref != "" {
			return refName(items.Ref), true
		}
		typ, _ := resolveSchemaType(items)
		return typ, true
	}
	if ref.Value.Type == "" {
		return "any", false
	}
	return ref.Value.Type, false
}

func refName(ref string) string {
	if i := strings.LastIndex(ref, "/"); i >= 0 {
		return ref[i+1:]
	}
	return ref
}

// deriveOperationID builds a deterministic operation id from method and path
// segments; parameter segments become By<Name>.
func deriveOperationID(method, path string) string {
	var b strings.Builder
	b.WriteString(strings.ToLower(method))
	for _, seg := range strings.Split(path, "/") {
		if seg == "" {
			continue
		}
		if strings.HasPrefix(seg, "{") && strings.HasSuffix(seg, "}") {
			b.WriteString("By")
			b.WriteString(typeconv.Pascal(strings.Trim(seg, "{}")))
			continue
		}
		b.WriteString(typeconv.Pascal(seg))
	}
	return b.String()
}

func uniqueID(seen map[string]int, id string) string {
	seen[id]++
	if n := seen[id]; n > 1 {
		return fmt.Sprintf("%s%d", id, n)
	}
	return id
}

// buildModels converts components.schemas into the shared model shape. Only
// object-shaped schemas become models; scalar aliases and enums have no
// field list to generate.
func buildModels(doc *openapi3.T) []schema.ParsedModel {
	if doc.Components == nil || len(doc.Components.Schemas) == 0 {
		return nil
	}
	names := make([]string, 0, len(doc.Components.Schemas))
	for name := range doc.Components.Schemas {
		names = append(names, name)
	}
	sort.Strings(names)

	var models []schema.ParsedModel
	for _, name := range names {
		ref := doc.Components.Schemas[name]
		if ref == nil || ref.Value == nil {
			continue
		}
		s := ref.Value
		if s.Type != "object" && len(s.Properties) == 0 {
			continue
		}

		m := schema.ParsedModel{
			Name:        name,
			Description: strings.TrimSpace(s.Description),
		}
		required := make(map[string]struct{}, len(s.Required))
		for _, r := range s.Required {
			required[r] = struct{}{}
		}

		propNames := make([]string, 0, len(s.Properties))
		for pn := range s.Properties {
			propNames = append(propNames, pn)
		}
		sort.Strings(propNames)

		for _, pn := range propNames {
			pref := s.Properties[pn]
			typ, isArray := resolveSchemaType(pref)
			prop := schema.ParsedProperty{
				Name:       pn,
				SourceType: typ,
				Array:      isArray,
			}
			if pref != nil && pref.Value != nil {
				prop.Format = strings.TrimSpace(pref.Value.Format)
				prop.Description = strings.TrimSpace(pref.Value.Description)
				prop.DefaultValue = pref.Value.Default
				prop.Optional = pref.Value.Nullable
			}
			if _, req := required[pn]; !req {
				prop.Optional = true
			}
			m.Properties = append(m.Properties, prop)
		}
		models = append(models, m)
	}
	return models
}
