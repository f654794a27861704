package upload

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"errors"
	"fmt"
	"mime/multipart"
	"sort"
	"strings"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/elvinasadov/arenda-api/internal/config"
	"github.com/elvinasadov/arenda-api/internal/utils"
)

// MaxFileSize задаёт максимальный размер файла (5MB)
const MaxFileSize = 5 * 1024 * 1024

// allowedTypes содержит разрешённые MIME-типы изображений
var allowedTypes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
	"image/webp": true,
}

// UploadedImage представляет результат загрузки одного файла
type UploadedImage struct {
	URL      string `json:"url"`
	PublicID string `json:"public_id"`
}

// UploadService предоставляет методы для загрузки изображений в Cloudinary
type UploadService struct {
	cfg        *config.Config
	jwtService *utils.JWTService
	cld        *cloudinary.Cloudinary
}

// NewUploadService создает новый экземпляр UploadService
func NewUploadService(cfg *config.Config) (*UploadService, error) {
	cld, err := cloudinary.NewFromParams(
		cfg.CloudinaryConfig.CloudName,
		cfg.CloudinaryConfig.APIKey,
		cfg.CloudinaryConfig.APISecret,
	)
	if err != nil {
		return nil, fmt.Errorf("ошибка инициализации Cloudinary: %w", err)
	}

	return &UploadService{
		cfg:        cfg,
		jwtService: utils.NewJWTService(cfg.JWTSecret),
		cld:        cld,
	}, nil
}

// ValidateFile проверяет MIME-тип и размер файла до отправки в Cloudinary
func ValidateFile(file *multipart.FileHeader) error {
	contentType := file.Header.Get("Content-Type")
	if !allowedTypes[contentType] {
		return errors.New("разрешены только изображения JPEG, JPG, PNG и WebP")
	}

	if file.Size > MaxFileSize {
		return errors.New("размер файла не должен превышать 5MB")
	}

	return nil
}

// UploadAll загружает все файлы в Cloudinary параллельно.
// Ошибка любого файла отменяет остальные загрузки и проваливает всю операцию.
func (s *UploadService) UploadAll(ctx context.Context, files []*multipart.FileHeader) ([]UploadedImage, error) {
	images := make([]UploadedImage, len(files))

	g, gctx := errgroup.WithContext(ctx)
	for i, file := range files {
		g.Go(func() error {
			src, err := file.Open()
			if err != nil {
				return fmt.Errorf("ошибка открытия файла %s: %w", file.Filename, err)
			}
			defer src.Close()

			resp, err := s.cld.Upload.Upload(gctx, src, uploader.UploadParams{
				Folder: s.cfg.CloudinaryConfig.UploadFolder,
			})
			if err != nil {
				return fmt.Errorf("ошибка загрузки файла %s: %w", file.Filename, err)
			}
			if resp.Error.Message != "" {
				return fmt.Errorf("ошибка загрузки файла %s: %s", file.Filename, resp.Error.Message)
			}

			images[i] = UploadedImage{
				URL:      resp.SecureURL,
				PublicID: resp.PublicID,
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return images, nil
}

// GenerateSignature создаёт корректную подпись для Cloudinary
func (s *UploadService) GenerateSignature(params map[string]string) string {
	// Сортируем ключи параметров
	var keys []string
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	// Формируем строку для подписи
	var signParts []string
	for _, k := range keys {
		signParts = append(signParts, fmt.Sprintf("%s=%s", k, params[k]))
	}
	signatureString := strings.Join(signParts, "&")

	// Добавляем API-секрет в конец строки
	signatureString += s.cfg.CloudinaryConfig.APISecret

	// Создаем SHA-1 хеш
	h := sha1.New()
	h.Write([]byte(signatureString))

	// Возвращаем подпись в виде шестнадцатеричной строки
	return hex.EncodeToString(h.Sum(nil))
}

// GenerateUploadParams создаёт параметры для прямой загрузки изображений с клиента
func (s *UploadService) GenerateUploadParams(c fiber.Ctx) error {
	// Генерируем ID для объявления, если не передан
	listingID := c.Query("listing_id")
	if listingID == "" {
		listingID = uuid.New().String()
	}

	// Текущий timestamp
	timestamp := fmt.Sprintf("%d", time.Now().Unix())

	// Параметры для подписи
	params := map[string]string{
		"timestamp": timestamp,
	}

	// Генерируем подпись
	signature := s.GenerateSignature(params)

	// Возвращаем параметры
	return c.JSON(fiber.Map{
		"timestamp":  timestamp,
		"signature":  signature,
		"api_key":    s.cfg.CloudinaryConfig.APIKey,
		"cloud_name": s.cfg.CloudinaryConfig.CloudName,
		"listing_id": listingID,
	})
}
