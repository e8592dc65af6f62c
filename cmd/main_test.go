package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	merkle "github.com/estensen/sortedmerkle"
	"github.com/estensen/sortedmerkle/hashers/keccak"
	"github.com/estensen/sortedmerkle/hashers/sha2"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRootCommand(t *testing.T) {
	out, err := run(t, "root", "a", "b", "c")
	require.NoError(t, err)

	want := merkle.NewTree([][]byte{[]byte("a"), []byte("b"), []byte("c")}, keccak.Hasher{}).Root()
	require.Equal(t, want.String()+"\n", out)

	out, err = run(t, "root", "--hasher", "sha256", "c", "b", "a")
	require.NoError(t, err)
	want = merkle.NewTree([][]byte{[]byte("a"), []byte("b"), []byte("c")}, sha2.Hasher{}).Root()
	require.Equal(t, want.String()+"\n", out)

	_, err = run(t, "root", "--hasher", "md5", "a")
	require.Error(t, err)
}

func TestProofThenVerify(t *testing.T) {
	out, err := run(t, "proof", "--leaf", "b", "a", "b", "c", "d", "e")
	require.NoError(t, err)

	var resp struct {
		Root  merkle.Hash  `json:"root"`
		Leaf  merkle.Hash  `json:"leaf"`
		Proof merkle.Proof `json:"proof"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	require.Equal(t, keccak.Hasher{}.Sum([]byte("b")), resp.Leaf)

	proofJSON, err := json.Marshal(resp.Proof)
	require.NoError(t, err)

	out, err = run(t, "verify", "--leaf", "b", "--root", resp.Root.String(), "--proof", string(proofJSON))
	require.NoError(t, err)
	require.Equal(t, "valid\n", out)

	_, err = run(t, "verify", "--leaf", "a", "--root", resp.Root.String(), "--proof", string(proofJSON))
	require.ErrorIs(t, err, errInvalidProof)

	_, err = run(t, "proof", "--leaf", "z", "a", "b")
	require.ErrorIs(t, err, merkle.ErrLeafNotFound)
}

func TestPrintCommand(t *testing.T) {
	out, err := run(t, "print", "a", "b", "c")
	require.NoError(t, err)

	tree := merkle.NewTree([][]byte{[]byte("a"), []byte("b"), []byte("c")}, keccak.Hasher{})
	require.Equal(t, tree.String(), out)
}

func TestHashersCommand(t *testing.T) {
	out, err := run(t, "hashers")
	require.NoError(t, err)
	require.Equal(t, "blake2b256\nblake3\nkeccak256\nsha256\n", out)
}

func TestReadLeaves(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	lines := filepath.Join(dir, "leaves.txt")
	require.NoError(t, os.WriteFile(lines, []byte("a\n\n  b \nc\n"), 0o600))
	values, err := readLeaves(lines, "", nil)
	require.NoError(t, err)
	require.Equal(t, [][]byte{[]byte("a"), []byte("b"), []byte("c")}, values)

	doc := filepath.Join(dir, "leaves.json")
	require.NoError(t, os.WriteFile(doc, []byte(`{"allowlist":{"addresses":["0x01","0x02",3]}}`), 0o600))
	values, err = readLeaves(doc, "allowlist.addresses", nil)
	require.NoError(t, err)
	require.Equal(t, [][]byte{[]byte("0x01"), []byte("0x02"), []byte("3")}, values)

	_, err = readLeaves(doc, "allowlist", nil)
	require.ErrorIs(t, err, errNotAnArray)

	_, err = readLeaves("", "allowlist", nil)
	require.Error(t, err)

	values, err = readLeaves("", "", []string{"x", "y"})
	require.NoError(t, err)
	require.Equal(t, [][]byte{[]byte("x"), []byte("y")}, values)
}

func TestLeavesCommandFromJSON(t *testing.T) {
	doc := filepath.Join(t.TempDir(), "leaves.json")
	require.NoError(t, os.WriteFile(doc, []byte(`{"items":["c","a","b"]}`), 0o600))

	out, err := run(t, "leaves", "--file", doc, "--json-path", "items")
	require.NoError(t, err)

	tree := merkle.NewTree([][]byte{[]byte("a"), []byte("b"), []byte("c")}, keccak.Hasher{})
	want := make([]string, 0, tree.Len())
	for _, leaf := range tree.Leaves() {
		want = append(want, leaf.String())
	}
	require.Equal(t, strings.Join(want, "\n")+"\n", out)
}
