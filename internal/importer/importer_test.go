package importer

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type put struct {
	collection string
	id         string
	fields     map[string]interface{}
}

type fakeWriter struct {
	puts []put
	err  error
}

func (f *fakeWriter) Put(_ context.Context, collection, id string, fields map[string]interface{}) error {
	if f.err != nil {
		return f.err
	}
	f.puts = append(f.puts, put{collection: collection, id: id, fields: fields})
	return nil
}

func TestClassify(t *testing.T) {
	cases := []struct {
		name  string
		value interface{}
		want  Kind
	}{
		{"array", []interface{}{map[string]interface{}{"a": 1}}, KindDocumentList},
		{"empty array", []interface{}{}, KindDocumentList},
		{"all-object map", map[string]interface{}{"x": map[string]interface{}{}}, KindKeyedDocumentMap},
		{"mixed map", map[string]interface{}{"x": map[string]interface{}{}, "y": "scalar"}, KindSingleDocument},
		{"flat map", map[string]interface{}{"name": "Jane"}, KindSingleDocument},
		{"empty map", map[string]interface{}{}, KindKeyedDocumentMap},
		{"string", "hello", KindUnsupported},
		{"number", float64(3), KindUnsupported},
		{"nil", nil, KindUnsupported},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Classify(tc.value))
		})
	}
}

func TestRunDocumentListGeneratesIDs(t *testing.T) {
	w := &fakeWriter{}
	export := map[string]interface{}{
		"works": []interface{}{
			map[string]interface{}{"company": "Acme"},
			map[string]interface{}{"company": "Beta"},
			"stray string",
		},
	}

	stats, err := Run(context.Background(), w, export)
	require.NoError(t, err)

	assert.Equal(t, 2, stats.Documents, "non-object items are skipped, not counted")
	require.Len(t, w.puts, 2)
	for _, p := range w.puts {
		assert.Equal(t, "works", p.collection)
		_, parseErr := uuid.Parse(p.id)
		assert.NoError(t, parseErr, "list items get generated ids")
	}
	assert.NotEqual(t, w.puts[0].id, w.puts[1].id)
}

func TestRunKeyedMapPreservesIDs(t *testing.T) {
	w := &fakeWriter{}
	export := map[string]interface{}{
		"skills": map[string]interface{}{
			"go":  map[string]interface{}{"value": float64(8)},
			"sql": map[string]interface{}{"value": float64(7)},
		},
	}

	stats, err := Run(context.Background(), w, export)
	require.NoError(t, err)

	assert.Equal(t, 2, stats.Documents)
	ids := map[string]bool{}
	for _, p := range w.puts {
		assert.Equal(t, "skills", p.collection)
		ids[p.id] = true
	}
	assert.Equal(t, map[string]bool{"go": true, "sql": true}, ids)
}

func TestRunSingleDocumentUsesFixedID(t *testing.T) {
	w := &fakeWriter{}
	export := map[string]interface{}{
		"bio": map[string]interface{}{"name": "Jane", "title": "Engineer"},
	}

	stats, err := Run(context.Background(), w, export)
	require.NoError(t, err)

	assert.Equal(t, 1, stats.Documents)
	require.Len(t, w.puts, 1)
	assert.Equal(t, "bio", w.puts[0].collection)
	assert.Equal(t, "data", w.puts[0].id)
	assert.Equal(t, "Jane", w.puts[0].fields["name"])
}

func TestRunEmptyObjectWritesNothing(t *testing.T) {
	w := &fakeWriter{}
	export := map[string]interface{}{
		"drafts": map[string]interface{}{},
	}

	stats, err := Run(context.Background(), w, export)
	require.NoError(t, err)

	assert.Zero(t, stats.Documents)
	assert.Empty(t, w.puts)
	assert.Empty(t, stats.Skipped)
}

func TestRunSkipsScalars(t *testing.T) {
	w := &fakeWriter{}
	export := map[string]interface{}{
		"version": float64(2),
		"bio":     map[string]interface{}{"name": "Jane"},
	}

	stats, err := Run(context.Background(), w, export)
	require.NoError(t, err)

	assert.Equal(t, 1, stats.Documents)
	assert.Equal(t, []string{"version"}, stats.Skipped)
}

func TestRunWriteFailureAborts(t *testing.T) {
	w := &fakeWriter{err: errors.New("permission denied")}
	export := map[string]interface{}{
		"bio": map[string]interface{}{"name": "Jane"},
	}

	_, err := Run(context.Background(), w, export)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bio")
}
