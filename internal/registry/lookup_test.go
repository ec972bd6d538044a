package registry_test

import (
	"testing"

	"github.com/MKhiriev/dollhouse-client/internal/mock"
	"github.com/MKhiriev/dollhouse-client/internal/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func dependencyTree() *registry.Node {
	root := registry.NewNode()
	root.AddPath(`Microsoft\XNA\Framework\v3.1`).SetValue("Installed", "1")
	return root
}

func TestFindSubKey(t *testing.T) {
	hive, err := registry.NewMemoryStore(dependencyTree()).Open("")
	require.NoError(t, err)

	name, ok, err := registry.FindSubKey(hive, "MICROSOFT")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "Microsoft", name)

	_, ok, err = registry.FindSubKey(hive, "Maxis")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestWalk_FullPath(t *testing.T) {
	hive, err := registry.NewMemoryStore(dependencyTree()).Open("")
	require.NoError(t, err)

	key, err := registry.Walk(hive, "microsoft", "xna", "framework", "V3.1")
	require.NoError(t, err)
	defer key.Close()

	v, err := key.StringValue("Installed")
	require.NoError(t, err)
	assert.Equal(t, "1", v)
}

func TestWalk_ReportsFirstMissingDepth(t *testing.T) {
	tests := []struct {
		name  string
		path  []string
		depth int
	}{
		{name: "vendor", path: []string{"Maxis", "XNA", "Framework", "v3.1"}, depth: 0},
		{name: "family", path: []string{"Microsoft", "DirectX", "Framework", "v3.1"}, depth: 1},
		{name: "product", path: []string{"Microsoft", "XNA", "Studio", "v3.1"}, depth: 2},
		{name: "version", path: []string{"Microsoft", "XNA", "Framework", "v4.0"}, depth: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hive, err := registry.NewMemoryStore(dependencyTree()).Open("")
			require.NoError(t, err)

			_, err = registry.Walk(hive, tt.path...)

			require.ErrorIs(t, err, registry.ErrKeyNotFound)
			depth, ok := registry.MissingDepth(err)
			assert.True(t, ok)
			assert.Equal(t, tt.depth, depth)
		})
	}
}

func TestWalk_EmptyPath(t *testing.T) {
	hive, err := registry.NewMemoryStore(nil).Open("")
	require.NoError(t, err)

	_, err = registry.Walk(hive)
	assert.ErrorIs(t, err, registry.ErrEmptyPath)
}

// TestWalk_StopsAtFirstAbsenceAndClosesIntermediates verifies that no deeper
// level is touched after a missing one and every opened key is closed.
func TestWalk_StopsAtFirstAbsenceAndClosesIntermediates(t *testing.T) {
	ctrl := gomock.NewController(t)

	root := mock.NewMockKey(ctrl)
	vendor := mock.NewMockKey(ctrl)

	gomock.InOrder(
		root.EXPECT().SubKeyNames().Return([]string{"Microsoft"}, nil),
		root.EXPECT().OpenSubKey("Microsoft").Return(vendor, nil),
		vendor.EXPECT().SubKeyNames().Return([]string{"DirectX"}, nil),
		vendor.EXPECT().Close().Return(nil),
	)

	_, err := registry.Walk(root, "Microsoft", "XNA", "Framework", "v3.1")

	depth, ok := registry.MissingDepth(err)
	require.True(t, ok)
	assert.Equal(t, 1, depth)
}

func TestWalk_ListError(t *testing.T) {
	ctrl := gomock.NewController(t)
	root := mock.NewMockKey(ctrl)
	root.EXPECT().SubKeyNames().Return(nil, assert.AnError)

	_, err := registry.Walk(root, "Microsoft")

	assert.ErrorIs(t, err, assert.AnError)
	_, ok := registry.MissingDepth(err)
	assert.False(t, ok)
}

func TestSplitPath(t *testing.T) {
	assert.Equal(t, []string{"SOFTWARE", "Wow6432Node"}, registry.SplitPath(`SOFTWARE\Wow6432Node`))
	assert.Equal(t, []string{"a", "b"}, registry.SplitPath(`/a//b\`))
	assert.Empty(t, registry.SplitPath(""))
}
