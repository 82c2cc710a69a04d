package plugin

import "fmt"

// TemplateNames lists the built-in plugin templates.
func TemplateNames() []string { return []string{"basic", "provider", "service"} }

// Template returns the built-in spec document for the given template kind.
// The plugin's name comes from the CLI argument, not the template.
func Template(kind string) ([]byte, error) {
	switch kind {
	case "", "basic":
		return []byte(basicTemplate), nil
	case "provider":
		return []byte(providerTemplate), nil
	case "service":
		return []byte(serviceTemplate), nil
	default:
		return nil, fmt.Errorf("plugin: unknown template %q (allowed: basic, provider, service)", kind)
	}
}

const basicTemplate = `# Basic plugin: lifecycle hooks and a debug toggle.
version: 1.0.0
methods:
  - name: initialize
    async: true
    throws: true
    description: Called once when the host application starts.
  - name: teardown
    description: Called when the plugin is unloaded.
`

const providerTemplate = `# Provider plugin: exposes a data provider protocol to the host.
version: 1.0.0
configuration:
  - name: refreshInterval
    type: number
    default: 300
    description: Seconds between provider refreshes.
methods:
  - name: initialize
    async: true
    throws: true
providers:
  - name: data
    description: Supplies records to the host application.
    methods:
      - name: fetchRecords
        async: true
        throws: true
        returns: Record[]
      - name: recordCount
        returns: integer
models:
  - name: record
    properties:
      - name: id
        type: string
        required: true
      - name: payload
        type: object
`

const serviceTemplate = `# Service plugin: long-running background work with typed results.
version: 1.0.0
configuration:
  - name: endpoint
    type: url
    required: true
    description: Remote service base URL.
  - name: timeoutSeconds
    type: number
    default: 30
methods:
  - name: initialize
    async: true
    throws: true
  - name: sync
    async: true
    throws: true
    returns: SyncResult
  - name: cancelSync
models:
  - name: syncResult
    properties:
      - name: itemsSynced
        type: integer
        required: true
      - name: finishedAt
        type: date
`
