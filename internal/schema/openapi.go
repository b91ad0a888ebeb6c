// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package schema

import (
	"fmt"
	"net/http"
	"strings"
)

// Info carries the top-level metadata of the generated document.
type Info struct {
	Title       string
	Description string
	Version     string
}

// Response describes one documented response of a route.
type Response struct {
	Description string
	Schema      *Object
	Array       bool
}

// Route describes one HTTP operation for documentation purposes. The same
// Request object handed to Validate at runtime is referenced here.
type Route struct {
	Method    string
	Path      string
	Summary   string
	Tag       string
	Request   *Object
	Responses map[int]Response
	Secured   bool
}

// BuildOpenAPI assembles an OpenAPI 3.1 document from the route table. It is
// a pure function over the schema declarations; the result is typically
// marshalled once and served from GET /docs/openapi.json.
func BuildOpenAPI(info Info, servers []string, routes []Route) map[string]any {
	paths := map[string]any{}
	components := map[string]any{}

	for _, r := range routes {
		collectObjects(components, r)

		operation := map[string]any{
			"summary":   r.Summary,
			"tags":      []string{r.Tag},
			"responses": responsesDoc(r.Responses),
		}
		if r.Request != nil {
			operation["requestBody"] = map[string]any{
				"required": true,
				"content": map[string]any{
					"application/json": map[string]any{
						"schema": ref(r.Request.Name),
					},
				},
			}
		}
		if r.Secured {
			operation["security"] = []map[string]any{{"bearerAuth": []string{}}}
		}

		item, _ := paths[r.Path].(map[string]any)
		if item == nil {
			item = map[string]any{}
			paths[r.Path] = item
		}
		item[strings.ToLower(r.Method)] = operation
	}

	serverDocs := make([]map[string]any, 0, len(servers))
	for _, s := range servers {
		serverDocs = append(serverDocs, map[string]any{"url": s})
	}

	return map[string]any{
		"openapi": "3.1.0",
		"info": map[string]any{
			"title":       info.Title,
			"description": info.Description,
			"version":     info.Version,
		},
		"servers": serverDocs,
		"paths":   paths,
		"components": map[string]any{
			"schemas": components,
			"securitySchemes": map[string]any{
				"bearerAuth": map[string]any{
					"type":         "http",
					"scheme":       "bearer",
					"bearerFormat": "JWT",
				},
			},
		},
	}
}

func responsesDoc(responses map[int]Response) map[string]any {
	out := map[string]any{}
	for status, resp := range responses {
		description := resp.Description
		if description == "" {
			description = http.StatusText(status)
		}
		doc := map[string]any{"description": description}
		if resp.Schema != nil {
			var s any = ref(resp.Schema.Name)
			if resp.Array {
				s = map[string]any{"type": "array", "items": ref(resp.Schema.Name)}
			}
			doc["content"] = map[string]any{
				"application/json": map[string]any{"schema": s},
			}
		}
		out[fmt.Sprintf("%d", status)] = doc
	}
	return out
}

// collectObjects registers every object a route references under
// components/schemas, keyed by name.
func collectObjects(components map[string]any, r Route) {
	if r.Request != nil {
		components[r.Request.Name] = objectDoc(*r.Request)
	}
	for _, resp := range r.Responses {
		if resp.Schema != nil {
			components[resp.Schema.Name] = objectDoc(*resp.Schema)
		}
	}
}

func objectDoc(o Object) map[string]any {
	properties := map[string]any{}
	var required []string

	for _, f := range o.Fields {
		properties[f.Name] = fieldDoc(f)
		if f.Required {
			required = append(required, f.Name)
		}
	}

	doc := map[string]any{
		"type":        "object",
		"title":       o.Title,
		"description": o.Description,
		"properties":  properties,
	}
	if len(required) > 0 {
		doc["required"] = required
	}
	return doc
}

func fieldDoc(f Field) map[string]any {
	doc := map[string]any{}

	if f.Nullable {
		// OpenAPI 3.1 expresses nullability as a type union.
		doc["type"] = []string{string(f.Type), "null"}
	} else {
		doc["type"] = string(f.Type)
	}
	if f.Format != "" {
		doc["format"] = f.Format
	}
	if f.MinLength > 0 {
		doc["minLength"] = f.MinLength
	}

	return doc
}

func ref(name string) map[string]any {
	return map[string]any{"$ref": "#/components/schemas/" + name}
}
