package handlers

import (
	"errors"
	"log"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/washapp/carwash-api/internal/httperr"
	"github.com/washapp/carwash-api/internal/httpresp"
	"github.com/washapp/carwash-api/internal/middleware"
	"github.com/washapp/carwash-api/internal/models"
	"github.com/washapp/carwash-api/internal/storage"
	"github.com/washapp/carwash-api/internal/validation"
)

type ProfileHandler struct {
	db    *gorm.DB
	store *storage.ImageStore
}

func NewProfileHandler(db *gorm.DB, store *storage.ImageStore) *ProfileHandler {
	return &ProfileHandler{db: db, store: store}
}

func (h *ProfileHandler) Get(c *gin.Context) {
	user := middleware.CurrentUser(c)

	var profile models.Profile
	if err := h.db.Where("user_id = ?", user.ID).First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "Profile not found for this user.")
			return
		}
		httperr.Internal(c, "Terjadi kesalahan pada server")
		return
	}

	httpresp.OK(c, "Profile berhasil ditemukan", gin.H{
		"name":        profile.Name,
		"address":     profile.Address,
		"phoneNumber": profile.PhoneNumber,
		"avatar":      profile.Avatar,
		"user": gin.H{
			"username": user.Username,
			"email":    user.Email,
		},
	})
}

func (h *ProfileHandler) Create(c *gin.Context) {
	user := middleware.CurrentUser(c)

	var count int64
	if err := h.db.Model(&models.Profile{}).Where("user_id = ?", user.ID).Count(&count).Error; err != nil {
		httperr.Internal(c, "Terjadi kesalahan pada server")
		return
	}
	if count > 0 {
		httperr.BadRequest(c, "User already has a profile")
		return
	}

	req := validation.ProfileInput{
		Name:        c.PostForm("name"),
		Address:     c.PostForm("address"),
		PhoneNumber: c.PostForm("phoneNumber"),
	}
	if err := req.Validate(); err != nil {
		httperr.BadRequest(c, err.Error())
		return
	}

	avatarURL, err := h.uploadAvatar(c, req.Name)
	if err != nil {
		var verr *validation.Error
		if errors.As(err, &verr) {
			httperr.BadRequest(c, verr.Message)
			return
		}
		httperr.Internal(c, "Gagal mengunggah avatar")
		return
	}

	profile := models.Profile{
		UserID:      user.ID,
		Name:        req.Name,
		Address:     req.Address,
		PhoneNumber: req.PhoneNumber,
		Avatar:      avatarURL,
	}

	if err := h.db.Create(&profile).Error; err != nil {
		httperr.Internal(c, "Terjadi kesalahan pada server")
		return
	}

	httpresp.Created(c, "Profile created successfully", profile)
}

func (h *ProfileHandler) Update(c *gin.Context) {
	user := middleware.CurrentUser(c)

	var profile models.Profile
	if err := h.db.Where("user_id = ?", user.ID).First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "Profile not found")
			return
		}
		httperr.Internal(c, "Terjadi kesalahan pada server")
		return
	}

	req := validation.ProfileInput{
		Name:        c.PostForm("name"),
		Address:     c.PostForm("address"),
		PhoneNumber: c.PostForm("phoneNumber"),
	}
	if req.Name == "" {
		req.Name = profile.Name
	}
	if req.Address == "" {
		req.Address = profile.Address
	}
	if req.PhoneNumber == "" {
		req.PhoneNumber = profile.PhoneNumber
	}
	if err := req.Validate(); err != nil {
		httperr.BadRequest(c, err.Error())
		return
	}

	if _, err := c.FormFile("avatar"); err == nil {
		avatarURL, err := h.uploadAvatar(c, req.Name)
		if err != nil {
			var verr *validation.Error
			if errors.As(err, &verr) {
				httperr.BadRequest(c, verr.Message)
				return
			}
			httperr.Internal(c, "Gagal mengunggah avatar")
			return
		}

		// remoção best-effort do avatar anterior
		if profile.Avatar != "" {
			if res := h.store.Delete(c.Request.Context(), profile.Avatar); !res.OK {
				log.Printf("failed to delete old avatar %s: %s", profile.Avatar, res.Reason)
			}
		}
		profile.Avatar = avatarURL
	}

	profile.Name = req.Name
	profile.Address = req.Address
	profile.PhoneNumber = req.PhoneNumber

	if err := h.db.Save(&profile).Error; err != nil {
		httperr.Internal(c, "Terjadi kesalahan pada server")
		return
	}

	httpresp.OK(c, "Profile updated successfully", gin.H{
		"name":        profile.Name,
		"address":     profile.Address,
		"phoneNumber": profile.PhoneNumber,
		"avatar":      profile.Avatar,
	})
}

// uploadAvatar devolve "" quando o campo avatar não foi enviado.
func (h *ProfileHandler) uploadAvatar(c *gin.Context, name string) (string, error) {
	fh, err := c.FormFile("avatar")
	if err != nil {
		return "", nil
	}

	data, err := storage.ReadImageUpload(fh)
	if err != nil {
		return "", err
	}

	encoded, err := storage.EncodeAvatar(data)
	if err != nil {
		return "", &validation.Error{Message: "File gambar tidak valid"}
	}

	slug := strings.ToLower(strings.ReplaceAll(name, " ", "_"))
	return h.store.Upload(c.Request.Context(), storage.FolderAvatar, "avatar_"+slug, encoded)
}
