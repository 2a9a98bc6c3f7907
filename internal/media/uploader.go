// Package media manages hosted image assets: uploading bytes to the external
// media host and keeping a local registry of everything uploaded.
package media

import (
	"fmt"
	"path"
	"strings"

	"github.com/guonaihong/gout"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/tripveda/tripveda/config"
	"github.com/tripveda/tripveda/internal/domain"
	"github.com/tripveda/tripveda/pkg/common"
)

// UploadResult is what the media host reports back for a stored asset.
type UploadResult struct {
	URL      string `json:"url"`
	PublicID string `json:"public_id"`
	Format   string `json:"format"`
	Bytes    int64  `json:"bytes"`
}

// Uploader pushes raw file bytes to the media host.
type Uploader interface {
	Upload(filename string, data []byte) (*UploadResult, error)
}

// HTTPUploader posts multipart uploads to the configured media endpoint.
type HTTPUploader struct {
	cfg config.MediaConfig
}

func NewHTTPUploader(cfg config.MediaConfig) *HTTPUploader {
	return &HTTPUploader{cfg: cfg}
}

func (u *HTTPUploader) Upload(filename string, data []byte) (*UploadResult, error) {
	if u.cfg.Endpoint == "" {
		return nil, errors.New("media endpoint is not configured")
	}
	var result UploadResult
	var code int
	err := gout.POST(u.cfg.Endpoint).
		SetHeader(gout.H{"Authorization": "Bearer " + u.cfg.ApiKey}).
		SetForm(gout.H{
			"folder": u.cfg.Folder,
			"file":   gout.FormMem(data),
		}).
		BindJSON(&result).
		Code(&code).
		Do()
	if err != nil {
		return nil, errors.Wrap(err, "media upload")
	}
	if code != 200 {
		return nil, errors.Errorf("media host returned status %d", code)
	}
	if result.Format == "" {
		result.Format = strings.TrimPrefix(path.Ext(filename), ".")
	}
	if result.Bytes == 0 {
		result.Bytes = int64(len(data))
	}
	return &result, nil
}

// Service uploads assets and records them in the media_asset registry.
type Service struct {
	uploader Uploader
	db       *gorm.DB
	log      *zap.Logger
}

func NewService(uploader Uploader, db *gorm.DB, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{uploader: uploader, db: db, log: log}
}

// Upload stores the bytes on the media host and registers the asset.
func (s *Service) Upload(filename string, data []byte) (*domain.MediaAsset, error) {
	if len(data) == 0 {
		return nil, errors.New("empty upload")
	}
	result, err := s.uploader.Upload(filename, data)
	if err != nil {
		return nil, err
	}
	asset := &domain.MediaAsset{
		ID:       common.UUIDint64(),
		URL:      result.URL,
		PublicID: result.PublicID,
		Folder:   path.Dir(result.PublicID),
		Format:   result.Format,
		Bytes:    result.Bytes,
	}
	if err := s.db.Create(asset).Error; err != nil {
		return nil, errors.Wrap(err, "register media asset")
	}
	s.log.Info("media uploaded",
		zap.String("public_id", asset.PublicID),
		zap.Int64("bytes", asset.Bytes))
	return asset, nil
}

// List returns registered assets, newest first.
func (s *Service) List(limit int) ([]domain.MediaAsset, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	var assets []domain.MediaAsset
	err := s.db.Order("created_at desc").Limit(limit).Find(&assets).Error
	return assets, errors.Wrap(err, "list media assets")
}

// Delete removes the registry row only. The hosted file is left in place so
// content still referencing the URL keeps rendering.
func (s *Service) Delete(id int64) error {
	ret := s.db.Delete(&domain.MediaAsset{}, id)
	if ret.Error != nil {
		return errors.Wrap(ret.Error, "delete media asset")
	}
	if ret.RowsAffected == 0 {
		return fmt.Errorf("media asset %d not found", id)
	}
	return nil
}
