package service

import (
	"context"
	"fmt"
	"log"
	"os"

	"benbao-ev/models"

	"google.golang.org/api/option"
	translate "google.golang.org/api/translate/v2"
)

// TranslateService translates vehicle display fields zh -> en using the
// Google Cloud Translation API.
// Implements TranslatorInterface
type TranslateService struct {
	client *translate.Service
}

// NewTranslateService creates a new TranslateService. Authentication uses
// TRANSLATE_API_KEY when set, otherwise the Service Account JSON pointed to
// by GOOGLE_APPLICATION_CREDENTIALS.
func NewTranslateService() (*TranslateService, error) {
	ctx := context.Background()

	var opts []option.ClientOption
	if apiKey := os.Getenv("TRANSLATE_API_KEY"); apiKey != "" {
		opts = append(opts, option.WithAPIKey(apiKey))
	} else if credentialsPath := os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"); credentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsPath))
	} else {
		return nil, fmt.Errorf("neither TRANSLATE_API_KEY nor GOOGLE_APPLICATION_CREDENTIALS is set")
	}

	client, err := translate.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create translate service: %w", err)
	}

	return &TranslateService{client: client}, nil
}

// Ensure TranslateService implements TranslatorInterface
var _ TranslatorInterface = (*TranslateService)(nil)

// TranslateVehicles translates the display fields of each vehicle snapshot.
// The id, model and price fields are copied through untouched, and the output
// order matches the input order.
func (ts *TranslateService) TranslateVehicles(ctx context.Context, vehicles []models.Vehicle) ([]models.Vehicle, error) {
	if len(vehicles) == 0 {
		return nil, nil
	}

	// Flatten every translatable field of every vehicle into one batch.
	// Per-vehicle segment lengths vary with the battery and color lists, so
	// record them to reassemble afterwards.
	var texts []string
	segments := make([]int, len(vehicles))
	for i, v := range vehicles {
		fields := translatableFields(v)
		segments[i] = len(fields)
		texts = append(texts, fields...)
	}

	log.Printf("🌐 Translating %d fields for %d vehicles", len(texts), len(vehicles))

	call := ts.client.Translations.List(texts, "en").
		Source("zh").
		Format("text")
	resp, err := call.Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("translation request failed: %w", err)
	}
	if len(resp.Translations) != len(texts) {
		return nil, fmt.Errorf("translation response has %d entries, expected %d", len(resp.Translations), len(texts))
	}

	translated := make([]string, len(texts))
	for i, t := range resp.Translations {
		translated[i] = t.TranslatedText
	}

	out := make([]models.Vehicle, len(vehicles))
	offset := 0
	for i, v := range vehicles {
		out[i] = applyTranslatedFields(v, translated[offset:offset+segments[i]])
		offset += segments[i]
	}

	log.Printf("✓ Translation completed for %d vehicles", len(vehicles))
	return out, nil
}

// translatableFields lists a vehicle's display fields in a fixed order:
// name, motor, brakeTire, seatDash, controlFunc, additional, battery..., colors...
func translatableFields(v models.Vehicle) []string {
	fields := []string{v.Name, v.Motor, v.BrakeTire, v.SeatDash, v.ControlFunc, v.Additional}
	fields = append(fields, v.Battery...)
	fields = append(fields, v.Colors...)
	return fields
}

// applyTranslatedFields rebuilds a vehicle from translated field values,
// keeping id, model and price from the original snapshot.
func applyTranslatedFields(original models.Vehicle, fields []string) models.Vehicle {
	out := original
	out.Name = fields[0]
	out.Motor = fields[1]
	out.BrakeTire = fields[2]
	out.SeatDash = fields[3]
	out.ControlFunc = fields[4]
	out.Additional = fields[5]

	offset := 6
	out.Battery = append([]string(nil), fields[offset:offset+len(original.Battery)]...)
	offset += len(original.Battery)
	out.Colors = append([]string(nil), fields[offset:offset+len(original.Colors)]...)

	return out
}
