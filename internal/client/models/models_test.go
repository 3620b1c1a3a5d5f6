package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScope(t *testing.T) {
	assert.True(t, Scope{}.IsPersonal())
	assert.True(t, PersonalScope().IsPersonal())
	assert.Equal(t, "personal", PersonalScope().String())
	assert.Equal(t, "", PersonalScope().OwnerCircleID())

	c := CircleScope("c1")
	assert.False(t, c.IsPersonal())
	assert.Equal(t, "circle/c1", c.String())
	assert.Equal(t, "c1", c.OwnerCircleID())
}

func TestPhoto_InAlbum(t *testing.T) {
	a1 := "a1"
	assert.True(t, Photo{}.InAlbum(""))
	assert.False(t, Photo{}.InAlbum("a1"))
	assert.True(t, Photo{AlbumID: &a1}.InAlbum("a1"))
	assert.False(t, Photo{AlbumID: &a1}.InAlbum(""))
}

func TestAlbum_ParentIDValue(t *testing.T) {
	p := "root-1"
	assert.Equal(t, "", Album{}.ParentIDValue())
	assert.Equal(t, "root-1", Album{ParentID: &p}.ParentIDValue())
}

func TestAlbumPatch_IsEmpty(t *testing.T) {
	assert.True(t, AlbumPatch{}.IsEmpty())
	name := "x"
	assert.False(t, AlbumPatch{Name: &name}.IsEmpty())
}

func TestPhotoType_Valid(t *testing.T) {
	for _, pt := range []PhotoType{"all", "favorites", "shared", "recent", "photos", "videos"} {
		assert.True(t, pt.Valid(), pt)
	}
	assert.False(t, PhotoType("starred").Valid())
	assert.False(t, PhotoType("").Valid())
}
