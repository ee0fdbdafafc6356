package structure

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.scnd.dev/open/forge/package/spec"
)

func derive(t *testing.T, content string) *Structure {
	t.Helper()
	tree, err := spec.Parse([]byte(content), spec.FormatYaml)
	require.NoError(t, err)
	return Derive(tree)
}

func TestDeriveBaseline(t *testing.T) {
	for _, content := range []string{
		"",
		"module: Plain\ngoal: nothing optional\n",
		"module: Plain\nevents: []\ndataModels: {}\nintegration: false\nmonitoring: ''\napi: {interfaces: []}\narchitecture: {layers: []}\n",
	} {
		result := derive(t, content)
		assert.Equal(t, []string{"docs", "src", "tests"}, result.Folders, content)
		assert.Equal(t, []string{result.ModuleName + ".yaml", "README.md", "docs/Architecture.md"}, result.Files)
	}
}

func TestDeriveMissingModuleUsesDefault(t *testing.T) {
	result := derive(t, "goal: x\n")
	assert.Equal(t, DefaultModuleName, result.ModuleName)
	assert.Equal(t, "UnknownModule.yaml", result.Files[0])

	assert.Equal(t, DefaultModuleName, derive(t, "module: '   '\n").ModuleName)
	assert.Equal(t, DefaultModuleName, derive(t, "module: ~\n").ModuleName)
	assert.Equal(t, DefaultModuleName, derive(t, "module: [a]\n").ModuleName)
	assert.Equal(t, DefaultModuleName, derive(t, "module: '..'\n").ModuleName)
}

func TestDeriveModuleName(t *testing.T) {
	assert.Equal(t, "Billing", derive(t, "module: '  Billing '\n").ModuleName)
	assert.Equal(t, "42", derive(t, "module: 42\n").ModuleName)
	assert.Equal(t, "..evil", derive(t, "module: ../evil\n").ModuleName)
}

func TestDeriveDataModels(t *testing.T) {
	result := derive(t, "module: Billing\ngoal: x\ndataModels:\n  dtos: true\n")

	assert.Equal(t, "Billing", result.ModuleName)
	assert.Equal(t, []string{"docs", "src", "src/Models", "src/Models/Dtos", "tests"}, result.Folders)
	assert.Equal(t, []string{"Billing.yaml", "README.md", "docs/Architecture.md"}, result.Files)

	result = derive(t, "dataModels:\n  dtos: []\n  entities: [Invoice]\n")
	assert.Equal(t, []string{"docs", "src", "src/Models", "src/Models/Entities", "tests"}, result.Folders)

	result = derive(t, "dataModels: [Invoice]\n")
	assert.Equal(t, []string{"docs", "src", "src/Models", "tests"}, result.Folders)
}

func TestDeriveLayers(t *testing.T) {
	result := derive(t, `
module: Orders
architecture:
  layers:
    - name: Domain Layer
    - name: ""
    - name: ~
    - {}
    - just a string
    - name: "  "
    - name: "Application\tLayer"
    - name: ../escape
    - name: Core/Domain
`)

	assert.Contains(t, result.Folders, "src/DomainLayer")
	assert.Contains(t, result.Folders, "src/Application\tLayer")
	assert.Contains(t, result.Folders, "src/Core/Domain")
	assert.NotContains(t, result.Folders, "src/")
	for _, folder := range result.Folders {
		assert.True(t, SafeRelative(folder), folder)
	}
	assert.Len(t, result.Folders, 6)
}

func TestDeriveAllRules(t *testing.T) {
	result := derive(t, `
module: Everything
api:
  interfaces: [IOrderService]
events:
  - OrderPlaced
dataModels:
  dtos: [OrderDto]
  entities: [Order]
architecture:
  layers:
    - name: Domain
    - name: Models
integration:
  kafka: true
monitoring: true
`)

	assert.Equal(t, []string{
		"docs",
		"src",
		"src/Domain",
		"src/Events",
		"src/Integration",
		"src/Interfaces",
		"src/Models",
		"src/Models/Dtos",
		"src/Models/Entities",
		"src/Monitoring",
		"tests",
	}, result.Folders)
}

func TestDeriveFoldersUniqueAndSorted(t *testing.T) {
	result := derive(t, `
architecture:
  layers:
    - name: Events
    - name: Ev ents
    - name: tests
    - name: A
events: yes
`)

	assert.True(t, sort.StringsAreSorted(result.Folders))
	seen := make(map[string]bool)
	for _, folder := range result.Folders {
		assert.False(t, seen[folder], folder)
		seen[folder] = true
	}
	assert.Equal(t, []string{"docs", "src", "src/A", "src/Events", "src/tests", "tests"}, result.Folders)
}

func TestDeriveWithCustomRules(t *testing.T) {
	tree, err := spec.Parse([]byte("cache: redis\n"), spec.FormatYaml)
	require.NoError(t, err)

	rules := append([]Rule{}, Rules...)
	rules = append(rules, Rule{
		Name:    "cache",
		Folders: func(tree *spec.Tree) []string {
			if spec.Present(tree.Lookup("cache")) {
				return []string{"src/Cache", "src"}
			}
			return nil
		},
	})

	result := DeriveWith(tree, rules)
	assert.Equal(t, []string{"docs", "src", "src/Cache", "tests"}, result.Folders)
}

func TestRulesIndependently(t *testing.T) {
	tree, err := spec.Parse([]byte("api:\n  interfaces: yes\nintegration: 1\n"), spec.FormatYaml)
	require.NoError(t, err)

	folders := make(map[string][]string)
	for _, rule := range Rules {
		folders[rule.Name] = rule.Folders(tree)
	}

	assert.Equal(t, []string{"src/Interfaces"}, folders["interfaces"])
	assert.Equal(t, []string{"src/Integration"}, folders["integration"])
	assert.Empty(t, folders["events"])
	assert.Empty(t, folders["models"])
	assert.Empty(t, folders["layers"])
	assert.Empty(t, folders["monitoring"])
}

func TestSafeRelative(t *testing.T) {
	assert.True(t, SafeRelative("src/Domain"))
	assert.False(t, SafeRelative(""))
	assert.False(t, SafeRelative("/abs"))
	assert.False(t, SafeRelative("a//b"))
	assert.False(t, SafeRelative("a/./b"))
	assert.False(t, SafeRelative("../b"))
}

func TestDeriveMergedFields(t *testing.T) {
	result := derive(t, `
defaults: &defaults
  module: Billing
  goal: Handle invoices
  events: [InvoicePaid]
<<: *defaults
`)

	assert.Equal(t, "Billing", result.ModuleName)
	assert.Equal(t, []string{"docs", "src", "src/Events", "tests"}, result.Folders)
	assert.Equal(t, "Billing.yaml", result.Files[0])
}
