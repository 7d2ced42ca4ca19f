package services

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

// GeocodeService resolves coordinates from the onboarding location step into
// city/country strings via the Nominatim reverse endpoint.
type GeocodeService struct {
	baseURL string
	client  *http.Client
}

func NewGeocodeService() *GeocodeService {
	base := os.Getenv("NOMINATIM_URL")
	if base == "" {
		base = "https://nominatim.openstreetmap.org"
	}
	return &GeocodeService{
		baseURL: base,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

type reverseGeocodeResponse struct {
	Address struct {
		City    string `json:"city"`
		Town    string `json:"town"`
		Village string `json:"village"`
		Country string `json:"country"`
	} `json:"address"`
}

// Reverse returns (city, country) for a coordinate pair.
func (s *GeocodeService) Reverse(lat, lng float64) (string, string, error) {
	u := fmt.Sprintf("%s/reverse?lat=%f&lon=%f&format=jsonv2", s.baseURL, lat, lng)

	req, err := http.NewRequest(http.MethodGet, u, nil)
	if err != nil {
		return "", "", err
	}
	req.Header.Set("User-Agent", "food-app-backend")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", "", fmt.Errorf("failed to call reverse geocoder: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", "", fmt.Errorf("failed to read geocoder response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", "", fmt.Errorf("geocoder API error %d: %s", resp.StatusCode, string(body))
	}

	var gr reverseGeocodeResponse
	if err := json.Unmarshal(body, &gr); err != nil {
		return "", "", fmt.Errorf("failed to parse geocoder JSON: %w", err)
	}

	city := gr.Address.City
	if city == "" {
		city = gr.Address.Town
	}
	if city == "" {
		city = gr.Address.Village
	}
	return city, gr.Address.Country, nil
}
