package handler

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cadesk/challan-extractor/dto"
	"github.com/cadesk/challan-extractor/service"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type ChallanHandler struct {
	esic   *service.ESICService
	pt     *service.PTService
	tds    *service.TDSService
	export *service.ExportService
}

func NewChallanHandler(esic *service.ESICService, pt *service.PTService, tds *service.TDSService, export *service.ExportService) *ChallanHandler {
	return &ChallanHandler{esic: esic, pt: pt, tds: tds, export: export}
}

// readFiles collects the uploaded PDFs from the multipart form into memory.
func (h *ChallanHandler) readFiles(c *gin.Context) ([]dto.UploadFile, bool) {
	form, err := c.MultipartForm()
	if err != nil {
		h.sendError(c, http.StatusBadRequest, "Failed to parse multipart form", err)
		return nil, false
	}

	headers := form.File["files[]"]
	if len(headers) == 0 {
		h.sendError(c, http.StatusBadRequest, "No files provided", nil)
		return nil, false
	}

	files := make([]dto.UploadFile, 0, len(headers))
	for _, fh := range headers {
		f, err := fh.Open()
		if err != nil {
			h.sendError(c, http.StatusBadRequest, "Failed to open "+fh.Filename, err)
			return nil, false
		}
		data, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			h.sendError(c, http.StatusBadRequest, "Failed to read "+fh.Filename, err)
			return nil, false
		}
		files = append(files, dto.UploadFile{Filename: fh.Filename, Data: data})
	}
	return files, true
}

// ExtractESIC handles POST /challan/esic. The optional format query selects
// csv, xlsx, or tsv (clipboard block) instead of the JSON batch result.
func (h *ChallanHandler) ExtractESIC(c *gin.Context) {
	files, ok := h.readFiles(c)
	if !ok {
		return
	}

	batch, err := h.esic.ProcessBatch(c.Request.Context(), files)
	if err != nil {
		h.sendError(c, http.StatusInternalServerError, "Failed to process batch", err)
		return
	}

	switch c.Query("format") {
	case "csv":
		c.Header("Content-Disposition", `attachment; filename="esic_challans.csv"`)
		c.Data(http.StatusOK, "text/csv; charset=utf-8", []byte(h.export.ESICCSV(batch)))
	case "xlsx":
		data, err := h.export.ESICXLSX(batch)
		if err != nil {
			h.sendError(c, http.StatusInternalServerError, "Failed to build workbook", err)
			return
		}
		c.Header("Content-Disposition", `attachment; filename="esic_challans.xlsx"`)
		c.Data(http.StatusOK, xlsxContentType, data)
	case "tsv":
		c.String(http.StatusOK, h.export.ESICClipboard(batch))
	default:
		c.JSON(http.StatusOK, batch)
	}
}

// ExtractPT handles POST /challan/pt.
func (h *ChallanHandler) ExtractPT(c *gin.Context) {
	files, ok := h.readFiles(c)
	if !ok {
		return
	}

	batch, err := h.pt.ProcessBatch(c.Request.Context(), files)
	if err != nil {
		h.sendError(c, http.StatusInternalServerError, "Failed to process batch", err)
		return
	}

	switch c.Query("format") {
	case "csv":
		c.Header("Content-Disposition", `attachment; filename="pt_challans.csv"`)
		c.Data(http.StatusOK, "text/csv; charset=utf-8", []byte(h.export.PTCSV(batch)))
	case "xlsx":
		data, err := h.export.PTXLSX(batch)
		if err != nil {
			h.sendError(c, http.StatusInternalServerError, "Failed to build workbook", err)
			return
		}
		c.Header("Content-Disposition", `attachment; filename="pt_challans.xlsx"`)
		c.Data(http.StatusOK, xlsxContentType, data)
	default:
		c.JSON(http.StatusOK, batch)
	}
}

// ExtractTDS handles POST /challan/tds.
func (h *ChallanHandler) ExtractTDS(c *gin.Context) {
	files, ok := h.readFiles(c)
	if !ok {
		return
	}

	batch, err := h.tds.ProcessBatch(c.Request.Context(), files)
	if err != nil {
		h.sendError(c, http.StatusInternalServerError, "Failed to process batch", err)
		return
	}

	switch c.Query("format") {
	case "csv":
		c.Header("Content-Disposition", `attachment; filename="tds_challans.csv"`)
		c.Data(http.StatusOK, "text/csv; charset=utf-8", []byte(h.export.TDSCSV(batch)))
	case "xlsx":
		data, err := h.export.TDSXLSX(batch)
		if err != nil {
			h.sendError(c, http.StatusInternalServerError, "Failed to build workbook", err)
			return
		}
		c.Header("Content-Disposition", `attachment; filename="tds_challans.xlsx"`)
		c.Data(http.StatusOK, xlsxContentType, data)
	default:
		c.JSON(http.StatusOK, batch)
	}
}

// sendError sends a structured error response
func (h *ChallanHandler) sendError(c *gin.Context, statusCode int, message string, err error) {
	errorMsg := message
	if err != nil {
		errorMsg = err.Error()
		slog.Error(message, "err", err)
	}

	c.JSON(statusCode, dto.ErrorResponse{
		Error:   "EXTRACTION_FAILED",
		Message: errorMsg,
		Code:    statusCode,
	})
}
