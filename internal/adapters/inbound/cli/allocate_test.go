package cli_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stockroute/stockroute/internal/domain"
)

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestAllocateCmd_JSONMatchesShipmentShape(t *testing.T) {
	dir := seedProject(t)
	order := writeFile(t, dir, "order.json", `{"apple": 7, "banana": 1}`)

	out, err := run(t, "allocate", order, "--path", dir, "--json")
	require.NoError(t, err)
	assert.JSONEq(t, `[{"warehouse_one":{"apple":5}},{"warehouse_two":{"apple":2,"banana":1}}]`, out)
}

func TestAllocateCmd_RendersReport(t *testing.T) {
	dir := seedProject(t)
	order := writeFile(t, dir, "order.yaml", "apple: 1\n")

	out, err := run(t, "allocate", order, "--path", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "FULFILLED")
	assert.Contains(t, out, "Warehouse One")
}

func TestAllocateCmd_UnfulfilledPrintsEmptyList(t *testing.T) {
	dir := seedProject(t)
	order := writeFile(t, dir, "order.json", `{"orange": 6}`)

	out, err := run(t, "allocate", order, "--path", dir, "--json")
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, out)
}

func TestAllocateCmd_CIModeFailsOnShortfall(t *testing.T) {
	dir := seedProject(t)
	order := writeFile(t, dir, "order.json", `{"orange": 6}`)

	_, err := run(t, "allocate", order, "--path", dir, "--ci")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "orange: requested 6, short by 4")
}

func TestAllocateCmd_StatePersistsBetweenRuns(t *testing.T) {
	dir := seedProject(t)
	order := writeFile(t, dir, "order.json", `{"apple": 10}`)

	_, err := run(t, "allocate", order, "--path", dir)
	require.NoError(t, err)

	out, err := run(t, "inventory", "--path", dir, "--json")
	require.NoError(t, err)

	var warehouses []domain.Warehouse
	require.NoError(t, json.Unmarshal([]byte(out), &warehouses))
	require.Len(t, warehouses, 2)
	one, _ := warehouses[0].Inventory.Quantity("apple")
	two, _ := warehouses[1].Inventory.Quantity("apple")
	assert.Equal(t, 0, one)
	assert.Equal(t, 5, two)
}

func TestAllocateCmd_RequiresInit(t *testing.T) {
	dir := t.TempDir()
	order := writeFile(t, dir, "order.json", `{"apple": 1}`)

	_, err := run(t, "allocate", order, "--path", dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "stockroute init")
}

func TestAllocateCmd_MissingFile(t *testing.T) {
	_, err := run(t, "allocate", filepath.Join(t.TempDir(), "nope.json"), "--path", seedProject(t))
	assert.Error(t, err)
}

func TestRestockCmd_AppendsAndMerges(t *testing.T) {
	dir := seedProject(t)
	updates := writeFile(t, dir, "restock.yaml", `- name: warehouse_two
  inventory:
    apple: 5
- name: warehouse_three
  inventory:
    kiwi: 4
`)

	out, err := run(t, "restock", updates, "--path", dir, "--json")
	require.NoError(t, err)

	var warehouses []domain.Warehouse
	require.NoError(t, json.Unmarshal([]byte(out), &warehouses))
	require.Len(t, warehouses, 3)
	assert.Equal(t, "warehouse_three", warehouses[2].Name)
	apple, _ := warehouses[1].Inventory.Quantity("apple")
	assert.Equal(t, 15, apple)
}

func TestInventoryCmd_Renders(t *testing.T) {
	dir := seedProject(t)

	out, err := run(t, "inventory", "--path", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "Inventory")
	assert.Contains(t, out, "Warehouse Two")
	assert.Contains(t, out, "banana")
}

func TestJournalCmd_ListsOperations(t *testing.T) {
	dir := seedProject(t)
	order := writeFile(t, dir, "order.json", `{"apple": 1}`)
	_, err := run(t, "allocate", order, "--path", dir)
	require.NoError(t, err)

	out, err := run(t, "journal", "--path", dir, "--json")
	require.NoError(t, err)

	var entries []domain.JournalEntry
	require.NoError(t, json.Unmarshal([]byte(out), &entries))
	require.Len(t, entries, 2)
	assert.Equal(t, domain.OperationSeed, entries[0].Operation)
	assert.Equal(t, domain.OperationAllocate, entries[1].Operation)

	out, err = run(t, "journal", "--path", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "Journal")
	assert.Contains(t, out, "allocate")
}

func TestJournalCmd_FiltersByOp(t *testing.T) {
	dir := seedProject(t)
	order := writeFile(t, dir, "order.json", `{"apple": 1}`)
	_, err := run(t, "allocate", order, "--path", dir)
	require.NoError(t, err)

	out, err := run(t, "journal", "--path", dir, "--json", "--op", "allocate")
	require.NoError(t, err)

	var entries []domain.JournalEntry
	require.NoError(t, json.Unmarshal([]byte(out), &entries))
	require.Len(t, entries, 1)
	assert.Equal(t, domain.OperationAllocate, entries[0].Operation)
	assert.Equal(t, 2, entries[0].Seq)
}

func TestJournalCmd_RejectsUnknownOp(t *testing.T) {
	dir := seedProject(t)
	_, err := run(t, "journal", "--path", dir, "--op", "refund")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnknownOperation)
}

func TestVersionCmd(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "stockroute dev")
}

func TestVerboseFlagAccepted(t *testing.T) {
	dir := seedProject(t)
	_, err := run(t, "--verbose", "inventory", "--path", dir)
	assert.NoError(t, err)
}
