package handlers

import (
	"mime/multipart"
	"net/textproto"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"streamhub-backend/internal/services"
)

func TestParseHostIDs(t *testing.T) {
	t.Run("empty string means absent", func(t *testing.T) {
		ids, err := ParseHostIDs("")
		require.NoError(t, err)
		assert.Nil(t, ids)

		ids, err = ParseHostIDs("   ")
		require.NoError(t, err)
		assert.Nil(t, ids)
	})

	t.Run("valid JSON array", func(t *testing.T) {
		ids, err := ParseHostIDs("[1, 2, 3]")
		require.NoError(t, err)
		assert.Equal(t, []uint{1, 2, 3}, ids)
	})

	t.Run("empty JSON array", func(t *testing.T) {
		ids, err := ParseHostIDs("[]")
		require.NoError(t, err)
		assert.NotNil(t, ids)
		assert.Empty(t, ids)
	})

	t.Run("malformed input is rejected, not silently emptied", func(t *testing.T) {
		for _, raw := range []string{"1,2,3", "[1, 2", `{"a":1}`, "abc", "[-1]"} {
			_, err := ParseHostIDs(raw)
			var ve services.ValidationError
			assert.ErrorAs(t, err, &ve, "input %q", raw)
		}
	})
}

func formWith(values map[string][]string) *multipart.Form {
	return &multipart.Form{
		Value: values,
		File:  map[string][]*multipart.FileHeader{},
	}
}

func TestMovieCreateInputParsesFields(t *testing.T) {
	form := formWith(map[string][]string{
		"title":        {"Deep Dive"},
		"categoryId":   {"3"},
		"description":  {"A review"},
		"video_url":    {"https://cdn.test/v/index.m3u8"},
		"release_year": {"2024"},
		"hostIds":      {"[10,11]"},
	})

	input, err := movieCreateInput(form)
	require.NoError(t, err)
	assert.Equal(t, "Deep Dive", input.Title)
	assert.Equal(t, uint(3), input.CategoryID)
	assert.Equal(t, 2024, input.ReleaseYear)
	assert.Equal(t, []uint{10, 11}, input.HostIDs)
	assert.Nil(t, input.Thumbnail)
}

func TestMovieCreateInputRejectsBadNumbers(t *testing.T) {
	var ve services.ValidationError

	_, err := movieCreateInput(formWith(map[string][]string{"categoryId": {"abc"}}))
	assert.ErrorAs(t, err, &ve)

	_, err = movieCreateInput(formWith(map[string][]string{"release_year": {"soon"}}))
	assert.ErrorAs(t, err, &ve)
}

func TestMovieUpdateInputDistinguishesAbsentFromEmpty(t *testing.T) {
	form := formWith(map[string][]string{
		"title":   {"Renamed"},
		"hostIds": {""},
	})

	input, err := movieUpdateInput(form)
	require.NoError(t, err)

	require.NotNil(t, input.Title)
	assert.Equal(t, "Renamed", *input.Title)
	assert.Nil(t, input.Description, "absent fields stay nil")
	assert.Nil(t, input.CategoryID)

	// hostIds was sent empty: that clears the set rather than leaving it.
	require.NotNil(t, input.HostIDs)
	assert.Empty(t, input.HostIDs)
}

func TestMovieUpdateInputOmitsHostIDsWhenAbsent(t *testing.T) {
	input, err := movieUpdateInput(formWith(map[string][]string{}))
	require.NoError(t, err)
	assert.Nil(t, input.HostIDs)
}

func TestValidateThumbnail(t *testing.T) {
	image := &multipart.FileHeader{
		Filename: "thumb.png",
		Size:     1024,
		Header:   textproto.MIMEHeader{"Content-Type": []string{"image/png"}},
	}
	require.NoError(t, validateThumbnail(image, 5*1024*1024))
	require.NoError(t, validateThumbnail(nil, 5*1024*1024))

	var ve services.ValidationError

	oversized := &multipart.FileHeader{
		Filename: "thumb.png",
		Size:     6 * 1024 * 1024,
		Header:   textproto.MIMEHeader{"Content-Type": []string{"image/png"}},
	}
	assert.ErrorAs(t, validateThumbnail(oversized, 5*1024*1024), &ve)

	notImage := &multipart.FileHeader{
		Filename: "movie.mp4",
		Size:     1024,
		Header:   textproto.MIMEHeader{"Content-Type": []string{"video/mp4"}},
	}
	assert.ErrorAs(t, validateThumbnail(notImage, 5*1024*1024), &ve)
}
