package manifest

import (
	"testing"

	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/proto"
)

func sampleManifest() *ManifestFileData {
	return &ManifestFileData{
		UserName:        "archiver",
		FavouriteNumber: 1701,
		Interests:       []string{"backups", "serialization"},
	}
}

func TestSealOpen_RoundTrip(t *testing.T) {
	sealed, err := Seal(sampleManifest())
	require.NoError(t, err)
	require.NotEmpty(t, sealed)

	got, err := Open(sealed)
	require.NoError(t, err)
	require.True(t, proto.Equal(sampleManifest(), got))
}

func TestSealOpen_Empty(t *testing.T) {
	sealed, err := Seal(&ManifestFileData{})
	require.NoError(t, err)

	got, err := Open(sealed)
	require.NoError(t, err)
	require.Empty(t, got.GetUserName())
	require.Zero(t, got.GetFavouriteNumber())
	require.Empty(t, got.GetInterests())
}

func TestOpen_DigestMismatch(t *testing.T) {
	sealed, err := Seal(sampleManifest())
	require.NoError(t, err)

	// Corrupt one payload byte past the pack framing.
	corrupted := append([]byte(nil), sealed...)
	corrupted[4] ^= 0xFF

	_, err = Open(corrupted)
	require.Error(t, err)
}

func TestManifestFileData_Accessors(t *testing.T) {
	m := sampleManifest()
	require.Equal(t, "archiver", m.GetUserName())
	require.Equal(t, int64(1701), m.GetFavouriteNumber())
	require.Equal(t, []string{"backups", "serialization"}, m.GetInterests())

	var nilMsg *ManifestFileData
	require.Empty(t, nilMsg.GetUserName())
	require.Zero(t, nilMsg.GetFavouriteNumber())
	require.Nil(t, nilMsg.GetInterests())
}
