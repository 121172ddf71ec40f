package handlers

import (
	"encoding/json"
	"mime/multipart"
	"strconv"
	"strings"

	"streamhub-backend/internal/services"
)

// Multipart field names for movie create/update.
const (
	fieldTitle             = "title"
	fieldCategoryID        = "categoryId"
	fieldDescription       = "description"
	fieldVideoURL          = "video_url"
	fieldHostIDs           = "hostIds"
	fieldDuration          = "duration"
	fieldReleaseYear       = "release_year"
	fieldRating            = "rating"
	fieldCast              = "cast"
	fieldDirector          = "director"
	fieldShow              = "show"
	fieldProductsReviewed  = "products_reviewed"
	fieldKeyHighlights     = "key_highlights"
	fieldAdditionalContext = "additional_context"
	fieldThumbnail         = "thumbnail"
)

// ParseHostIDs decodes the hostIds multipart field, a JSON-encoded array of
// ids. Malformed JSON is a validation error, never a silent empty list.
func ParseHostIDs(raw string) ([]uint, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}

	var ids []uint
	if err := json.Unmarshal([]byte(raw), &ids); err != nil {
		return nil, services.ValidationError("hostIds must be a JSON array of host ids")
	}
	return ids, nil
}

func movieCreateInput(form *multipart.Form) (*services.MovieCreateInput, error) {
	values := formValues(form)

	input := &services.MovieCreateInput{
		Title:             values[fieldTitle],
		Description:       values[fieldDescription],
		VideoURL:          values[fieldVideoURL],
		Duration:          values[fieldDuration],
		Rating:            values[fieldRating],
		Cast:              values[fieldCast],
		Director:          values[fieldDirector],
		Show:              values[fieldShow],
		ProductsReviewed:  values[fieldProductsReviewed],
		KeyHighlights:     values[fieldKeyHighlights],
		AdditionalContext: values[fieldAdditionalContext],
	}

	if raw := values[fieldCategoryID]; raw != "" {
		categoryID, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			return nil, services.ValidationError("categoryId must be a number")
		}
		input.CategoryID = uint(categoryID)
	}

	if raw := values[fieldReleaseYear]; raw != "" {
		year, err := strconv.Atoi(raw)
		if err != nil {
			return nil, services.ValidationError("release_year must be a number")
		}
		input.ReleaseYear = year
	}

	hostIDs, err := ParseHostIDs(values[fieldHostIDs])
	if err != nil {
		return nil, err
	}
	input.HostIDs = hostIDs

	if files := form.File[fieldThumbnail]; len(files) > 0 {
		input.Thumbnail = files[0]
	}

	return input, nil
}

// movieUpdateInput maps only the fields present in the form; absent fields
// stay nil so the service leaves them untouched.
func movieUpdateInput(form *multipart.Form) (*services.MovieUpdateInput, error) {
	input := &services.MovieUpdateInput{}

	str := func(field string) *string {
		if vals, ok := form.Value[field]; ok && len(vals) > 0 {
			return &vals[0]
		}
		return nil
	}

	input.Title = str(fieldTitle)
	input.Description = str(fieldDescription)
	input.VideoURL = str(fieldVideoURL)
	input.Duration = str(fieldDuration)
	input.Rating = str(fieldRating)
	input.Cast = str(fieldCast)
	input.Director = str(fieldDirector)
	input.Show = str(fieldShow)
	input.ProductsReviewed = str(fieldProductsReviewed)
	input.KeyHighlights = str(fieldKeyHighlights)
	input.AdditionalContext = str(fieldAdditionalContext)

	if raw := str(fieldCategoryID); raw != nil {
		categoryID, err := strconv.ParseUint(*raw, 10, 32)
		if err != nil {
			return nil, services.ValidationError("categoryId must be a number")
		}
		id := uint(categoryID)
		input.CategoryID = &id
	}

	if raw := str(fieldReleaseYear); raw != nil {
		year, err := strconv.Atoi(*raw)
		if err != nil {
			return nil, services.ValidationError("release_year must be a number")
		}
		input.ReleaseYear = &year
	}

	if raw := str(fieldHostIDs); raw != nil {
		hostIDs, err := ParseHostIDs(*raw)
		if err != nil {
			return nil, err
		}
		if hostIDs == nil {
			hostIDs = []uint{}
		}
		input.HostIDs = hostIDs
	}

	if files := form.File[fieldThumbnail]; len(files) > 0 {
		input.Thumbnail = files[0]
	}

	return input, nil
}

func formValues(form *multipart.Form) map[string]string {
	values := make(map[string]string, len(form.Value))
	for key, vals := range form.Value {
		if len(vals) > 0 {
			values[key] = vals[0]
		}
	}
	return values
}

// validateThumbnail enforces the image-only, size-limited upload contract at
// the API boundary.
func validateThumbnail(file *multipart.FileHeader, maxSize int64) error {
	if file == nil {
		return nil
	}
	if maxSize > 0 && file.Size > maxSize {
		return services.ValidationError("thumbnail exceeds the maximum upload size")
	}
	contentType := file.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		return services.ValidationError("thumbnail must be an image")
	}
	return nil
}
