package api

import (
	"context"
	"errors"
	"fmt"
	"image"
	"log"
	"math/rand"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/youruser/photobooth/internal/compose"
	imagepkg "github.com/youruser/photobooth/internal/image"
	"github.com/youruser/photobooth/internal/layout"
	"github.com/youruser/photobooth/internal/presets"
)

// renderRequest is one composite. Images come inline as base64 or by URL;
// frames and backgrounds may also name a catalog preset.
type renderRequest struct {
	SubjectURL string `json:"subject_url"`
	SubjectB64 string `json:"subject_b64"`

	FrameID  string `json:"frame_id"`
	FrameURL string `json:"frame_url"`
	FrameB64 string `json:"frame_b64"`

	BackgroundID string                  `json:"background_id"`
	Background   *compose.BackgroundSpec `json:"background"`

	Transform         *compose.ImageTransform `json:"transform"`
	Lighting          bool                    `json:"lighting"`
	Moe               bool                    `json:"moe"`
	ShowDate          bool                    `json:"show_date"`
	NoiseLevel        float64                 `json:"noise_level"`
	Decorations       compose.DecorationState `json:"decorations"`
	SelectedStickerID string                  `json:"selected_sticker_id"`
	AspectRatio       float64                 `json:"aspect_ratio"`
	FitMode           bool                    `json:"fit_mode"`

	// Preview draws the selection chrome; exports never show it.
	Preview bool `json:"preview"`
	// Seed fixes the grain pattern.
	Seed *int64 `json:"seed"`
	// Date is an RFC 3339 timestamp for the date stamp.
	Date string `json:"date"`
}

type sheetRequest struct {
	Template string          `json:"template"`
	Poses    []renderRequest `json:"poses"`
	Location string          `json:"location"`
	Name     string          `json:"name"`
	Date     string          `json:"date"`
	// Format "datauri" answers JSON instead of raw JPEG.
	Format  string `json:"format"`
	Quality int    `json:"quality"`
}

// badRequest marks input errors that map to 400.
type badRequest struct{ err error }

func (b badRequest) Error() string { return b.err.Error() }
func (b badRequest) Unwrap() error { return b.err }

func invalid(format string, args ...any) error {
	return badRequest{fmt.Errorf(format, args...)}
}

func status(err error) int {
	var br badRequest
	if errors.As(err, &br) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func (s *Server) renderHandler(c *gin.Context) {
	var req renderRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	p, err := s.params(c.Request.Context(), req)
	if err != nil {
		c.JSON(status(err), gin.H{"error": err.Error()})
		return
	}
	var out *image.RGBA
	if req.Preview {
		out = s.renderer.Render(p)
	} else {
		out = s.renderer.RenderExport(p)
	}
	b, err := imagepkg.PNG(out)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, "image/png", b)
}

func (s *Server) sheetHandler(c *gin.Context) {
	var req sheetRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if len(req.Poses) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "poses required"})
		return
	}
	if len(req.Poses) > s.cfg.Server.MaxPoses {
		log.Printf("sheet: %d poses, keeping first %d", len(req.Poses), s.cfg.Server.MaxPoses)
		req.Poses = req.Poses[:s.cfg.Server.MaxPoses]
	}

	composites := make([]image.Image, 0, len(req.Poses))
	for i, pose := range req.Poses {
		p, err := s.params(c.Request.Context(), pose)
		if err != nil {
			c.JSON(status(err), gin.H{"error": fmt.Sprintf("pose %d: %v", i, err)})
			return
		}
		if p.Subject == nil {
			continue
		}
		composites = append(composites, s.renderer.RenderExport(p))
	}

	location := req.Location
	if location == "" {
		location = s.cfg.Render.Location
	}
	sheet, err := layout.Generate(composites, req.Template, layout.Options{
		Location: location,
		Name:     req.Name,
		Date:     req.Date,
		Fonts:    s.fonts,
	})
	if errors.Is(err, layout.ErrNoSources) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no pose has a usable subject"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	quality := req.Quality
	if quality == 0 {
		quality = s.cfg.Render.JPEGQuality
	}
	b, err := sheet.JPEG(quality)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if req.Format == "datauri" {
		c.JSON(http.StatusOK, gin.H{
			"template": sheet.Template,
			"width":    sheet.Image.Bounds().Dx(),
			"height":   sheet.Image.Bounds().Dy(),
			"data_uri": imagepkg.DataURI("image/jpeg", b),
		})
		return
	}
	c.Data(http.StatusOK, "image/jpeg", b)
}

// params resolves a request into render parameters. Malformed inline
// images are errors; remote images that fail to download are skipped
// with a warning and the render degrades.
func (s *Server) params(ctx context.Context, req renderRequest) (compose.RenderParams, error) {
	p := compose.RenderParams{
		Transform:         req.Transform,
		Lighting:          req.Lighting,
		Moe:               req.Moe,
		ShowDate:          req.ShowDate,
		NoiseLevel:        req.NoiseLevel,
		Decorations:       req.Decorations,
		SelectedStickerID: req.SelectedStickerID,
		AspectRatio:       req.AspectRatio,
		FitMode:           req.FitMode,
	}
	if req.Seed != nil {
		p.Rand = rand.New(rand.NewSource(*req.Seed))
	}
	if req.Date != "" {
		t, err := time.Parse(time.RFC3339, req.Date)
		if err != nil {
			return p, invalid("date: %v", err)
		}
		p.Now = t
	}

	subject, err := s.loadImage(ctx, "subject", req.SubjectB64, req.SubjectURL)
	if err != nil {
		return p, err
	}
	if subject == nil && req.SubjectB64 == "" && req.SubjectURL == "" {
		return p, invalid("subject_url or subject_b64 required")
	}
	p.Subject = subject

	frame, err := s.loadImage(ctx, "frame", req.FrameB64, req.FrameURL)
	if err != nil {
		return p, err
	}
	if frame == nil && req.FrameID != "" {
		frame = s.catalogFrame(ctx, req.FrameID)
	}
	p.Frame = frame

	switch {
	case req.Background != nil:
		p.Background = req.Background
	case req.BackgroundID != "":
		if pr, ok := presets.Find(s.catalog, presets.KindBackground, req.BackgroundID); ok {
			bg, _ := pr.Background()
			p.Background = &bg
		} else {
			log.Println("unknown background preset:", req.BackgroundID)
		}
	}
	return p, nil
}

// loadImage decodes b64 when set, else downloads url (best-effort).
func (s *Server) loadImage(ctx context.Context, what, b64, url string) (image.Image, error) {
	if b64 != "" {
		img, err := imagepkg.DecodeBase64(b64)
		if err != nil {
			return nil, invalid("%s_b64: %v", what, err)
		}
		return img, nil
	}
	if url == "" {
		return nil, nil
	}
	img, err := s.download(ctx, url)
	if err != nil {
		log.Printf("%s download error: %v", what, err)
		return nil, nil
	}
	return img, nil
}

func (s *Server) download(ctx context.Context, url string) (image.Image, error) {
	if d, err := s.cfg.Timeout(); err == nil && d > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d)
		defer cancel()
	}
	return imagepkg.Download(ctx, url)
}

// catalogFrame resolves a frame preset: drawn procedurally, fetched from
// an http(s) src, or read from a src relative to the presets directory.
func (s *Server) catalogFrame(ctx context.Context, id string) image.Image {
	if img, ok := presets.Frame(id); ok {
		return img
	}
	pr, ok := presets.Find(s.catalog, presets.KindFrame, id)
	if !ok || pr.Src == "" {
		if id != "none" {
			log.Println("unknown frame preset:", id)
		}
		return nil
	}
	var (
		img image.Image
		err error
	)
	if strings.HasPrefix(pr.Src, "http://") || strings.HasPrefix(pr.Src, "https://") {
		img, err = s.download(ctx, pr.Src)
	} else {
		path := pr.Src
		if !filepath.IsAbs(path) {
			path = filepath.Join(s.cfg.Paths.Presets, path)
		}
		img, err = imagepkg.Open(path)
	}
	if err != nil {
		log.Printf("frame %s skipped: %v", id, err)
		return nil
	}
	return img
}
