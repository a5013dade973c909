package server

import (
	"bytes"
	"compress/gzip"
	"io"
	"net/http"
	"strings"

	"planner/internal/domain/errors"

	"github.com/gin-gonic/gin"
)

type gzipBody struct {
	io.Reader
	gzipReader io.Closer
	bodyCloser io.Closer
}

func (gb *gzipBody) Close() error {
	var err1, err2 error
	if gb.gzipReader != nil {
		err1 = gb.gzipReader.Close()
	}
	if gb.bodyCloser != nil {
		err2 = gb.bodyCloser.Close()
	}
	if err1 != nil {
		return err1
	}
	return err2
}

func GzipRequestDecompress() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		encoding := strings.ToLower(ctx.GetHeader("Content-Encoding"))
		if strings.Contains(encoding, "gzip") {
			gr, err := gzip.NewReader(ctx.Request.Body)
			if err != nil {
				ctx.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": errors.ErrInvalidGzipRequest.Error()})
				return
			}

			ctx.Request.Body = &gzipBody{
				Reader:     gr,
				gzipReader: gr,
				bodyCloser: ctx.Request.Body,
			}

			ctx.Request.Header.Del("Content-Encoding")
			ctx.Request.Header.Del("Content-Length")
		}
		ctx.Next()
	}
}

const minCompressSize = 1024

var nonCompressibleStatuses = map[int]bool{
	http.StatusNoContent:         true,
	http.StatusNotModified:       true,
	http.StatusPartialContent:    true,
	http.StatusMovedPermanently:  true,
	http.StatusFound:             true,
	http.StatusSeeOther:          true,
	http.StatusTemporaryRedirect: true,
	http.StatusPermanentRedirect: true,
}

// bufferedGzipWriter накапливает ответ целиком и при записи решает,
// сжимать ли его: статус, тип содержимого и порог размера.
type bufferedGzipWriter struct {
	gin.ResponseWriter
	buf        bytes.Buffer
	statusCode int
}

func (w *bufferedGzipWriter) Write(data []byte) (int, error) {
	return w.buf.Write(data)
}

func (w *bufferedGzipWriter) WriteString(s string) (int, error) {
	return w.buf.WriteString(s)
}

func (w *bufferedGzipWriter) WriteHeader(statusCode int) {
	w.statusCode = statusCode
}

func (w *bufferedGzipWriter) WriteHeaderNow() {}

func (w *bufferedGzipWriter) Size() int { return w.buf.Len() }

func (w *bufferedGzipWriter) Written() bool { return w.statusCode != 0 || w.buf.Len() > 0 }

func (w *bufferedGzipWriter) Status() int {
	if w.statusCode != 0 {
		return w.statusCode
	}
	return http.StatusOK
}

func (w *bufferedGzipWriter) mayCompress() bool {
	if w.buf.Len() < minCompressSize {
		return false
	}
	if nonCompressibleStatuses[w.Status()] {
		return false
	}
	if w.ResponseWriter.Header().Get("Content-Encoding") != "" {
		return false
	}
	return isCompressibleContentType(w.ResponseWriter.Header().Get("Content-Type"))
}

func (w *bufferedGzipWriter) flush(ctx *gin.Context) {
	data := w.buf.Bytes()

	if w.mayCompress() {
		var compressed bytes.Buffer
		gw := gzip.NewWriter(&compressed)
		_, werr := gw.Write(data)
		cerr := gw.Close()
		if werr != nil || cerr != nil {
			_ = ctx.Error(errors.ErrGzipCompressionFailed)
		} else {
			w.ResponseWriter.Header().Del("Content-Length")
			w.ResponseWriter.Header().Set("Content-Encoding", "gzip")
			data = compressed.Bytes()
		}
	}

	w.ResponseWriter.WriteHeader(w.Status())
	if len(data) > 0 {
		if _, err := w.ResponseWriter.Write(data); err != nil {
			_ = ctx.Error(err)
		}
	}
}

func GzipResponseCompress() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if ctx.Request.Method == http.MethodHead {
			ctx.Next()
			return
		}

		acceptEnc := strings.ToLower(ctx.GetHeader("Accept-Encoding"))
		if !strings.Contains(acceptEnc, "gzip") {
			ctx.Next()
			return
		}

		vary := ctx.Writer.Header().Get("Vary")
		if vary == "" {
			ctx.Writer.Header().Set("Vary", "Accept-Encoding")
		} else if !strings.Contains(vary, "Accept-Encoding") {
			ctx.Writer.Header().Set("Vary", vary+", Accept-Encoding")
		}

		gw := &bufferedGzipWriter{ResponseWriter: ctx.Writer}
		ctx.Writer = gw

		ctx.Next()

		gw.flush(ctx)
	}
}

func isCompressibleContentType(ct string) bool {
	if ct == "" {
		return false
	}

	lower := strings.ToLower(ct)
	if strings.HasPrefix(lower, "text/event-stream") {
		return false
	}

	compressiblePrefixes := []string{
		"application/json",
		"application/xml",
		"application/javascript",
		"text/html",
		"text/css",
		"text/plain",
		"text/xml",
		"text/javascript",
	}

	for _, prefix := range compressiblePrefixes {
		if strings.HasPrefix(lower, prefix) {
			return true
		}
	}

	return false
}
