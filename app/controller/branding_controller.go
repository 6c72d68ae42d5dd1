package controller

import (
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"

	"benbao-ev/repository"
	"benbao-ev/service"
)

// BrandingController handles HTTP requests for the company logo used in the
// document header.
type BrandingController struct {
	assetRepo repository.AssetRepositoryInterface
}

// NewBrandingController creates a new BrandingController
func NewBrandingController(assetRepo repository.AssetRepositoryInterface) *BrandingController {
	return &BrandingController{
		assetRepo: assetRepo,
	}
}

// Logo handles GET, POST and DELETE /admin/branding/logo
// POST accepts the raw image bytes (any common format); the stored form is
// an optimized PNG data URI.
func (c *BrandingController) Logo(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		c.get(w, r)
	case http.MethodPost:
		c.upload(w, r)
	case http.MethodDelete:
		c.delete(w, r)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (c *BrandingController) get(w http.ResponseWriter, r *http.Request) {
	dataURI, err := c.assetRepo.GetLogo(r.Context())
	if err != nil {
		log.Printf("❌ GetLogo: %v", err)
		http.Error(w, fmt.Sprintf("Failed to get logo: %v", err), http.StatusInternalServerError)
		return
	}
	if dataURI == "" {
		http.Error(w, "no logo set", http.StatusNotFound)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"logo": dataURI})
}

func (c *BrandingController) upload(w http.ResponseWriter, r *http.Request) {
	// Reject oversized uploads at the boundary, before any state mutation.
	// The +1 lets a body exactly one byte over the cap trip the limit.
	body, err := io.ReadAll(io.LimitReader(r.Body, service.MaxLogoBytes+1))
	if err != nil {
		log.Printf("❌ UploadLogo: failed to read body: %v", err)
		http.Error(w, "failed to read upload", http.StatusBadRequest)
		return
	}

	dataURI, err := service.ProcessLogo(body)
	if err != nil {
		if errors.Is(err, service.ErrAssetTooLarge) {
			log.Printf("⚠️  UploadLogo: rejected %d bytes (max %d)", len(body), service.MaxLogoBytes)
			http.Error(w, "图片文件过大，请上传小于 2MB 的图片 (Image too large, max 2MB)", http.StatusRequestEntityTooLarge)
			return
		}
		log.Printf("❌ UploadLogo: %v", err)
		http.Error(w, fmt.Sprintf("Failed to process logo: %v", err), http.StatusBadRequest)
		return
	}

	if err := c.assetRepo.SaveLogo(r.Context(), dataURI); err != nil {
		log.Printf("❌ UploadLogo: %v", err)
		http.Error(w, fmt.Sprintf("Failed to save logo: %v", err), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"logo": dataURI})
}

func (c *BrandingController) delete(w http.ResponseWriter, r *http.Request) {
	if err := c.assetRepo.DeleteLogo(r.Context()); err != nil {
		log.Printf("❌ DeleteLogo: %v", err)
		http.Error(w, fmt.Sprintf("Failed to delete logo: %v", err), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
