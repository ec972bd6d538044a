package install_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/dollhouse-client/internal/config"
	"github.com/MKhiriev/dollhouse-client/internal/install"
	"github.com/MKhiriev/dollhouse-client/internal/logger"
	"github.com/MKhiriev/dollhouse-client/internal/mock"
	"github.com/MKhiriev/dollhouse-client/internal/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func installConfig() config.Install {
	return config.Install{
		Root:      "SOFTWARE",
		Vendor:    "Maxis",
		Product:   "The Sims Online",
		ValueName: "InstallDir",
		SubPath:   "TSOClient",
	}
}

func TestResolveInstallPath_Success(t *testing.T) {
	root := registry.NewNode()
	root.AddPath(`SOFTWARE\maxis\THE SIMS ONLINE`).SetValue("InstallDir", filepath.Join("games", "tso"))

	r := install.NewInstallResolver(registry.NewMemoryStore(root), installConfig(), logger.Nop())
	path, err := r.ResolveInstallPath(context.Background())

	require.NoError(t, err)
	assert.Equal(t, filepath.Join("games", "tso", "TSOClient"), path)
}

func TestResolveInstallPath_Fatal(t *testing.T) {
	tests := []struct {
		name    string
		build   func(root *registry.Node)
		level   error
		message string
	}{
		{
			name:    "no software root",
			build:   func(root *registry.Node) {},
			level:   install.ErrVendorNotFound,
			message: "Error: No Maxis products were found on your system.",
		},
		{
			name:    "vendor missing",
			build:   func(root *registry.Node) { root.AddPath(`SOFTWARE\EA`) },
			level:   install.ErrVendorNotFound,
			message: "Error: No Maxis products were found on your system.",
		},
		{
			name:    "product missing",
			build:   func(root *registry.Node) { root.AddPath(`SOFTWARE\Maxis\SimCity 4`) },
			level:   install.ErrProductNotFound,
			message: "Error: The Sims Online was not found on your system.",
		},
		{
			name:    "install dir value missing",
			build:   func(root *registry.Node) { root.AddPath(`SOFTWARE\Maxis\The Sims Online`) },
			level:   install.ErrInstallDirNotFound,
			message: "Error: the The Sims Online installation directory is not recorded on your system.",
		},
		{
			name: "install dir value blank",
			build: func(root *registry.Node) {
				root.AddPath(`SOFTWARE\Maxis\The Sims Online`).SetValue("InstallDir", "  ")
			},
			level:   install.ErrInstallDirNotFound,
			message: "Error: the The Sims Online installation directory is not recorded on your system.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := registry.NewNode()
			tt.build(root)

			r := install.NewInstallResolver(registry.NewMemoryStore(root), installConfig(), logger.Nop())
			path, err := r.ResolveInstallPath(context.Background())

			assert.Empty(t, path)
			assert.ErrorIs(t, err, install.ErrFatalInstallation)
			assert.ErrorIs(t, err, tt.level)

			var fatal *install.FatalError
			require.True(t, errors.As(err, &fatal))
			assert.Equal(t, tt.message, fatal.Message)
		})
	}
}

// TestResolveInstallPath_ClosesKeysOnFailure checks handle release on the
// value-missing path.
func TestResolveInstallPath_ClosesKeysOnFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mock.NewMockStore(ctrl)
	root := mock.NewMockKey(ctrl)
	vendor := mock.NewMockKey(ctrl)
	product := mock.NewMockKey(ctrl)

	store.EXPECT().Open("SOFTWARE").Return(root, nil)
	root.EXPECT().SubKeyNames().Return([]string{"Maxis"}, nil)
	root.EXPECT().OpenSubKey("Maxis").Return(vendor, nil)
	vendor.EXPECT().SubKeyNames().Return([]string{"The Sims Online"}, nil)
	vendor.EXPECT().OpenSubKey("The Sims Online").Return(product, nil)
	vendor.EXPECT().Close().Return(nil)
	product.EXPECT().StringValue("InstallDir").Return("", registry.ErrValueNotFound)
	product.EXPECT().Close().Return(nil)
	root.EXPECT().Close().Return(nil)

	r := install.NewInstallResolver(store, installConfig(), logger.Nop())
	_, err := r.ResolveInstallPath(context.Background())

	assert.ErrorIs(t, err, install.ErrInstallDirNotFound)
	assert.ErrorIs(t, err, registry.ErrValueNotFound)
}

func TestResolveInstallPath_StoreUnavailable(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mock.NewMockStore(ctrl)
	store.EXPECT().Open("SOFTWARE").Return(nil, registry.ErrStoreUnavailable)

	r := install.NewInstallResolver(store, installConfig(), logger.Nop())
	_, err := r.ResolveInstallPath(context.Background())

	assert.ErrorIs(t, err, install.ErrFatalInstallation)
	assert.ErrorIs(t, err, registry.ErrStoreUnavailable)
}
