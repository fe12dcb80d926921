package api

import (
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/magrebiali/FixMySheet-Backend/common"
	"github.com/magrebiali/FixMySheet-Backend/config"
	"github.com/magrebiali/FixMySheet-Backend/tabfile"
	"github.com/magrebiali/FixMySheet-Backend/types"
)

// respondError maps an engine error to the wire format: tagged errors become
// a 400 with the message plus any structured context flattened alongside it,
// anything else is a 500.
func respondError(c *gin.Context, err error) {
	if appErr, ok := types.AsError(err); ok {
		body := gin.H{"error": appErr.Message}
		for k, v := range appErr.Context {
			body[k] = v
		}
		c.JSON(http.StatusBadRequest, body)
		return
	}
	log.Printf("API Error: %v", err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}

// readUpload parses one uploaded multipart file into a table.
func readUpload(c *gin.Context, field string) (*types.Table, error) {
	fh, err := c.FormFile(field)
	if err != nil {
		return nil, types.NewInvalidConfiguration(fmt.Sprintf("missing uploaded file %q", field), nil)
	}
	f, err := fh.Open()
	if err != nil {
		return nil, types.NewInvalidInput("Invalid file. Upload .xlsx or .csv")
	}
	defer f.Close()
	return tabfile.Read(fh.Filename, f)
}

// sendWorkbook serializes the sheets to a temp artifact, streams it back,
// and removes the file once the response is written. Removal is best-effort.
func sendWorkbook(c *gin.Context, sheets []tabfile.Sheet, downloadName string) {
	if err := common.EnsureTmpDir(config.TmpDir); err != nil {
		respondError(c, fmt.Errorf("failed to prepare tmp dir: %w", err))
		return
	}

	path := common.ArtifactPath(config.TmpDir)
	out, err := os.Create(path)
	if err != nil {
		respondError(c, fmt.Errorf("failed to create artifact: %w", err))
		return
	}
	defer common.RemoveArtifact(path)

	if err := tabfile.WriteWorkbook(out, sheets); err != nil {
		out.Close()
		respondError(c, err)
		return
	}
	if err := out.Close(); err != nil {
		respondError(c, fmt.Errorf("failed to finalize artifact: %w", err))
		return
	}

	f, err := os.Open(path)
	if err != nil {
		respondError(c, fmt.Errorf("failed to open artifact: %w", err))
		return
	}
	defer f.Close()
	info, err := f.Stat()
	if err != nil {
		respondError(c, fmt.Errorf("failed to stat artifact: %w", err))
		return
	}

	c.DataFromReader(http.StatusOK, info.Size(), config.WorkbookContentType, f, map[string]string{
		"Content-Disposition": fmt.Sprintf("attachment; filename=%q", downloadName),
	})
}
