package kotlinemitter

import (
	"sort"
	"strings"

	"github.com/cuppalabs/cuppa/internal/spec/api"
	"github.com/cuppalabs/cuppa/internal/typeconv"
)

// APIClient renders a Retrofit-style suspend interface plus serializable data
// classes for every schema the document declares.
func APIClient(parsed *api.ParsedAPI, source string) string {
	ifaceName := typeconv.Pascal(parsed.Name) + "Api"

	lines := header(source)
	lines = append(lines, "", "package "+generatedPackage, "")
	lines = append(lines, retrofitImports(parsed)...)
	lines = append(lines, "")

	lines = append(lines, fmtLine("interface %s {", ifaceName))
	for i := range parsed.Endpoints {
		if i > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, endpointMethod(&parsed.Endpoints[i])...)
	}
	lines = append(lines, "}")

	for _, m := range parsed.Models {
		lines = append(lines, "")
		lines = append(lines, dataClass(m)...)
	}

	return join(lines)
}

// retrofitImports lists only the annotations the interface actually uses,
// sorted the way a formatter would leave them.
func retrofitImports(parsed *api.ParsedAPI) []string {
	used := map[string]bool{}
	for i := range parsed.Endpoints {
		ep := &parsed.Endpoints[i]
		used["retrofit2.http."+strings.ToUpper(ep.Method)] = true
		if len(ep.PathParams) > 0 {
			used["retrofit2.http.Path"] = true
		}
		if len(ep.QueryParams) > 0 {
			used["retrofit2.http.Query"] = true
		}
		if len(ep.HeaderParams) > 0 {
			used["retrofit2.http.Header"] = true
		}
		if ep.RequestBody != nil {
			used["retrofit2.http.Body"] = true
		}
	}
	if len(parsed.Models) > 0 {
		used["kotlinx.serialization.Serializable"] = true
		for _, m := range parsed.Models {
			if anyRenamed(m) {
				used["kotlinx.serialization.SerialName"] = true
			}
		}
	}

	names := make([]string, 0, len(used))
	for name := range used {
		names = append(names, name)
	}
	sort.Strings(names)

	lines := make([]string, 0, len(names))
	for _, name := range names {
		lines = append(lines, "import "+name)
	}
	return lines
}

func endpointMethod(ep *api.ParsedEndpoint) []string {
	var lines []string
	if ep.Summary != "" {
		lines = append(lines, docComment("    ", ep.Summary)...)
	}
	lines = append(lines, fmtLine("    @%s(%q)", strings.ToUpper(ep.Method), strings.TrimPrefix(ep.Path, "/")))

	var params []string
	for _, p := range ep.PathParams {
		params = append(params, fmtLine("@Path(%q) %s: %s", p.Name, typeconv.Camel(p.Name), paramType(p, true)))
	}
	for _, p := range ep.QueryParams {
		params = append(params, fmtLine("@Query(%q) %s", p.Name, annotatedParam(p)))
	}
	for _, p := range ep.HeaderParams {
		params = append(params, fmtLine("@Header(%q) %s", p.Name, annotatedParam(p)))
	}
	if ep.RequestBody != nil {
		params = append(params, fmtLine("@Body body: %s", mapType(ep.RequestBody.SourceType, ep.RequestBody.Array)))
	}

	returns := ""
	if ok := ep.SuccessResponse(); ok != nil && ok.SourceType != "" {
		returns = ": " + mapType(ok.SourceType, ok.Array)
	}

	lines = append(lines, fmtLine("    suspend fun %s(%s)%s", ep.OperationID, strings.Join(params, ", "), returns))
	return lines
}

func paramType(p api.Parameter, required bool) string {
	t := mapType(p.SourceType, p.Array)
	if !required {
		t = typeconv.MapOptional(typeconv.Android, t)
	}
	return t
}

func annotatedParam(p api.Parameter) string {
	camel := typeconv.Camel(p.Name)
	if p.Required {
		return fmtLine("%s: %s", camel, paramType(p, true))
	}
	return fmtLine("%s: %s = null", camel, paramType(p, false))
}
