package swiftemitter

import (
	"strings"

	"github.com/cuppalabs/cuppa/internal/spec/api"
	"github.com/cuppalabs/cuppa/internal/typeconv"
)

// APIClient renders a URLSession-based async client plus Codable models for
// every schema the document declares.
func APIClient(parsed *api.ParsedAPI, source string) string {
	clientName := typeconv.Pascal(parsed.Name) + "Client"
	errName := typeconv.Pascal(parsed.Name) + "Error"

	lines := header(source)
	lines = append(lines, "", "import Foundation", "")

	lines = append(lines,
		fmtLine("public enum %s: Error {", errName),
		"    case invalidURL",
		"    case requestFailed(statusCode: Int)",
		"    case decodingFailed(Error)",
		"}",
		"",
	)

	lines = append(lines, fmtLine("public final class %s {", clientName))
	lines = append(lines,
		"    public let baseURL: URL",
		"    private let session: URLSession",
		"    private let encoder = JSONEncoder()",
		"    private let decoder = JSONDecoder()",
		"",
		"    public init(baseURL: URL, session: URLSession = .shared) {",
		"        self.baseURL = baseURL",
		"        self.session = session",
		"    }",
	)

	for i := range parsed.Endpoints {
		lines = append(lines, "")
		lines = append(lines, endpointMethod(&parsed.Endpoints[i], errName)...)
	}

	lines = append(lines, "")
	lines = append(lines, requestHelper(errName)...)
	lines = append(lines, "}")

	if len(parsed.Models) > 0 {
		lines = append(lines, "", "// MARK: - Models")
		for _, m := range parsed.Models {
			lines = append(lines, "")
			lines = append(lines, modelStruct(m)...)
		}
	}

	return join(lines)
}

func endpointMethod(ep *api.ParsedEndpoint, errName string) []string {
	var lines []string
	if ep.Summary != "" {
		lines = append(lines, "    /// "+ep.Summary)
	}

	var params []string
	for _, p := range ep.PathParams {
		params = append(params, fmtLine("%s: %s", typeconv.Camel(p.Name), paramType(p)))
	}
	for _, p := range ep.QueryParams {
		params = append(params, optionalParam(p))
	}
	for _, p := range ep.HeaderParams {
		params = append(params, optionalParam(p))
	}
	if ep.RequestBody != nil {
		params = append(params, fmtLine("body: %s", mapType(ep.RequestBody.SourceType, ep.RequestBody.Array)))
	}

	returns := "Void"
	if ok := ep.SuccessResponse(); ok != nil && ok.SourceType != "" {
		returns = mapType(ok.SourceType, ok.Array)
	}

	lines = append(lines, fmtLine("    public func %s(%s) async throws -> %s {", ep.OperationID, joinParams(params), returns))

	// Path parameters substitute into the template path.
	path := ep.Path
	lines = append(lines, fmtLine("        var path = %q", path))
	for _, p := range ep.PathParams {
		camel := typeconv.Camel(p.Name)
		lines = append(lines, fmtLine("        path = path.replacingOccurrences(of: %q, with: String(describing: %s))", "{"+p.Name+"}", camel))
	}

	lines = append(lines, "        var query: [URLQueryItem] = []")
	for _, p := range ep.QueryParams {
		camel := typeconv.Camel(p.Name)
		if p.Required {
			lines = append(lines, fmtLine("        query.append(URLQueryItem(name: %q, value: String(describing: %s)))", p.Name, camel))
		} else {
			lines = append(lines, fmtLine("        if let %s { query.append(URLQueryItem(name: %q, value: String(describing: %s))) }", camel, p.Name, camel))
		}
	}

	lines = append(lines, "        var headers: [String: String] = [:]")
	for _, p := range ep.HeaderParams {
		camel := typeconv.Camel(p.Name)
		if p.Required {
			lines = append(lines, fmtLine("        headers[%q] = String(describing: %s)", p.Name, camel))
		} else {
			lines = append(lines, fmtLine("        if let %s { headers[%q] = String(describing: %s) }", camel, p.Name, camel))
		}
	}

	body := "nil"
	if ep.RequestBody != nil {
		body = "try encoder.encode(body)"
	}
	method := strings.ToUpper(ep.Method)
	if returns == "Void" {
		lines = append(lines, fmtLine("        _ = try await send(method: %q, path: path, query: query, headers: headers, body: %s)", method, body))
	} else {
		lines = append(lines, fmtLine("        let data = try await send(method: %q, path: path, query: query, headers: headers, body: %s)", method, body))
		lines = append(lines, fmtLine("        do { return try decoder.decode(%s.self, from: data) } catch { throw %s.decodingFailed(error) }", returns, errName))
	}
	lines = append(lines, "    }")
	return lines
}

func requestHelper(errName string) []string {
	return []string{
		"    private func send(method: String, path: String, query: [URLQueryItem], headers: [String: String], body: Data?) async throws -> Data {",
		"        guard var components = URLComponents(url: baseURL.appendingPathComponent(path), resolvingAgainstBaseURL: false) else {",
		fmtLine("            throw %s.invalidURL", errName),
		"        }",
		"        if !query.isEmpty { components.queryItems = query }",
		fmtLine("        guard let url = components.url else { throw %s.invalidURL }", errName),
		"        var request = URLRequest(url: url)",
		"        request.httpMethod = method",
		"        request.httpBody = body",
		"        request.setValue(\"application/json\", forHTTPHeaderField: \"Content-Type\")",
		"        for (key, value) in headers { request.setValue(value, forHTTPHeaderField: key) }",
		"        let (data, response) = try await session.data(for: request)",
		"        if let http = response as? HTTPURLResponse, !(200..<300).contains(http.statusCode) {",
		fmtLine("            throw %s.requestFailed(statusCode: http.statusCode)", errName),
		"        }",
		"        return data",
		"    }",
	}
}

func paramType(p api.Parameter) string {
	return mapType(p.SourceType, p.Array)
}

func optionalParam(p api.Parameter) string {
	camel := typeconv.Camel(p.Name)
	if p.Required {
		return fmtLine("%s: %s", camel, paramType(p))
	}
	return fmtLine("%s: %s? = nil", camel, paramType(p))
}
