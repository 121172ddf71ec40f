package models

import (
	"encoding/json"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func movieField(t *testing.T, name string) reflect.StructField {
	t.Helper()
	field, ok := reflect.TypeOf(Movie{}).FieldByName(name)
	require.True(t, ok, "Movie has no field %s", name)
	return field
}

func TestMovieCategoryIsNullable(t *testing.T) {
	field := movieField(t, "CategoryID")
	assert.Equal(t, reflect.Ptr, field.Type.Kind(), "a deleted category must leave the movie with a null categoryId")

	category := movieField(t, "Category")
	assert.Contains(t, category.Tag.Get("gorm"), "OnDelete:SET NULL")
}

func TestMovieHostsJoinCascades(t *testing.T) {
	field := movieField(t, "Hosts")
	tag := field.Tag.Get("gorm")
	assert.Contains(t, tag, "many2many:movie_hosts")
	assert.Contains(t, tag, "OnDelete:CASCADE", "deleting either side removes the join rows")
}

func TestMovieHostCompositeKey(t *testing.T) {
	typ := reflect.TypeOf(MovieHost{})

	movieID, ok := typ.FieldByName("MovieID")
	require.True(t, ok)
	hostID, ok := typ.FieldByName("HostID")
	require.True(t, ok)

	assert.Contains(t, movieID.Tag.Get("gorm"), "primaryKey")
	assert.Contains(t, hostID.Tag.Get("gorm"), "primaryKey")
	assert.Equal(t, "movie_hosts", MovieHost{}.TableName())
}

func TestUserPasswordNeverSerialized(t *testing.T) {
	user := User{
		ID:       1,
		Email:    "ana@example.com",
		Password: "$2a$10$secret-hash",
		Role:     RoleUser,
	}

	encoded, err := json.Marshal(user)
	require.NoError(t, err)
	assert.NotContains(t, string(encoded), "secret-hash")
	assert.NotContains(t, string(encoded), "password")
}

func TestTableNames(t *testing.T) {
	assert.Equal(t, "movies", Movie{}.TableName())
	assert.Equal(t, "categories", Category{}.TableName())
	assert.Equal(t, "hosts", Host{}.TableName())
	assert.Equal(t, "users", User{}.TableName())
}
