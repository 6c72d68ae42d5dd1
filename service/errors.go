package service

import "errors"

var (
	// ErrSessionNotFound is returned when a quote session id does not resolve
	ErrSessionNotFound = errors.New("quote session not found")

	// ErrTranslationInFlight is returned when an export is requested while a
	// translation pass is still running
	ErrTranslationInFlight = errors.New("translation in flight, export disabled")

	// ErrEmptyCart is returned when an export is requested for an empty cart
	ErrEmptyCart = errors.New("cart is empty, nothing to export")

	// ErrAssetTooLarge is returned when an uploaded logo exceeds the size cap
	ErrAssetTooLarge = errors.New("image too large, max 2MB")
)
