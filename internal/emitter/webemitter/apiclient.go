package webemitter

import (
	"strings"

	"github.com/cuppalabs/cuppa/internal/spec/api"
	"github.com/cuppalabs/cuppa/internal/typeconv"
)

// APIClient renders a fetch-based client class plus interfaces for every
// schema the document declares.
func APIClient(parsed *api.ParsedAPI, source string) string {
	clientName := typeconv.Pascal(parsed.Name) + "Client"
	errName := typeconv.Pascal(parsed.Name) + "Error"

	lines := header(source)
	lines = append(lines, "")

	lines = append(lines,
		fmtLine("export class %s extends Error {", errName),
		"  constructor(message: string, public readonly status?: number) {",
		"    super(message);",
		fmtLine("    this.name = %q;", errName),
		"  }",
		"}",
		"",
	)

	lines = append(lines, fmtLine("export class %s {", clientName))
	lines = append(lines,
		"  constructor(",
		"    private readonly baseUrl: string,",
		"    private readonly fetchImpl: typeof fetch = fetch,",
		"  ) {}",
	)

	for i := range parsed.Endpoints {
		lines = append(lines, "")
		lines = append(lines, endpointMethod(&parsed.Endpoints[i], errName)...)
	}

	lines = append(lines, "}")

	for _, m := range parsed.Models {
		lines = append(lines, "")
		lines = append(lines, modelInterface(m)...)
	}

	return join(lines)
}

func endpointMethod(ep *api.ParsedEndpoint, errName string) []string {
	var lines []string
	if ep.Summary != "" {
		lines = append(lines, docComment("  ", ep.Summary)...)
	}

	// Required parameters come first so optional ones can carry `?`.
	var params, optional []string
	for _, p := range ep.PathParams {
		params = append(params, fmtLine("%s: %s", typeconv.Camel(p.Name), mapType(p.SourceType, p.Array)))
	}
	if ep.RequestBody != nil {
		params = append(params, fmtLine("body: %s", mapType(ep.RequestBody.SourceType, ep.RequestBody.Array)))
	}
	for _, p := range append(append([]api.Parameter{}, ep.QueryParams...), ep.HeaderParams...) {
		if p.Required {
			params = append(params, optionalParam(p))
		} else {
			optional = append(optional, optionalParam(p))
		}
	}
	params = append(params, optional...)

	returns := "void"
	if ok := ep.SuccessResponse(); ok != nil && ok.SourceType != "" {
		returns = mapType(ok.SourceType, ok.Array)
	}

	lines = append(lines, fmtLine("  async %s(%s): Promise<%s> {", ep.OperationID, strings.Join(params, ", "), returns))

	// Path parameters substitute into a template literal.
	path := ep.Path
	for _, p := range ep.PathParams {
		camel := typeconv.Camel(p.Name)
		path = strings.ReplaceAll(path, "{"+p.Name+"}", "${encodeURIComponent(String("+camel+"))}")
	}
	lines = append(lines, fmtLine("    const url = new URL(`%s`, this.baseUrl);", path))

	for _, p := range ep.QueryParams {
		camel := typeconv.Camel(p.Name)
		set := fmtLine("url.searchParams.set(%q, String(%s));", p.Name, camel)
		if p.Required {
			lines = append(lines, "    "+set)
		} else {
			lines = append(lines, fmtLine("    if (%s !== undefined) %s", camel, set))
		}
	}

	lines = append(lines, `    const headers: Record<string, string> = { "Content-Type": "application/json" };`)
	for _, p := range ep.HeaderParams {
		camel := typeconv.Camel(p.Name)
		set := fmtLine("headers[%q] = String(%s);", p.Name, camel)
		if p.Required {
			lines = append(lines, "    "+set)
		} else {
			lines = append(lines, fmtLine("    if (%s !== undefined) %s", camel, set))
		}
	}

	lines = append(lines, "    const response = await this.fetchImpl(url.toString(), {")
	lines = append(lines, fmtLine("      method: %q,", strings.ToUpper(ep.Method)))
	lines = append(lines, "      headers,")
	if ep.RequestBody != nil {
		lines = append(lines, "      body: JSON.stringify(body),")
	}
	lines = append(lines, "    });")

	lines = append(lines,
		"    if (!response.ok) {",
		fmtLine("      throw new %s(`request failed: ${response.status}`, response.status);", errName),
		"    }",
	)
	if returns == "void" {
		lines = append(lines, "  }")
		return lines
	}
	lines = append(lines,
		fmtLine("    return (await response.json()) as %s;", returns),
		"  }",
	)
	return lines
}

func optionalParam(p api.Parameter) string {
	camel := typeconv.Camel(p.Name)
	if p.Required {
		return fmtLine("%s: %s", camel, mapType(p.SourceType, p.Array))
	}
	return fmtLine("%s?: %s", camel, mapType(p.SourceType, p.Array))
}
