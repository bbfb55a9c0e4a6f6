package handler

import (
	"encoding/base64"
	"fmt"
	"io"
	"mime/multipart"

	"anoa.com/plusgems/pkg/validator"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Inline images are capped well below typical row-size limits.
const maxImageBytes = 5 << 20

func formatValidationError(err error) string {
	return validator.FormatValidationError(err)
}

// readImageBase64 reads an uploaded file and returns it base64-encoded for
// inline storage next to the row.
func readImageBase64(fileHeader *multipart.FileHeader) (*string, error) {
	if fileHeader.Size > maxImageBytes {
		return nil, fmt.Errorf("image exceeds %d bytes", maxImageBytes)
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open uploaded image: %w", err)
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxImageBytes+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read uploaded image: %w", err)
	}
	if len(data) > maxImageBytes {
		return nil, fmt.Errorf("image exceeds %d bytes", maxImageBytes)
	}

	encoded := base64.StdEncoding.EncodeToString(data)
	return &encoded, nil
}

func parseIDParam(c *gin.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid id")
	}
	return id, nil
}
