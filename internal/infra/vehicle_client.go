package infra

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"strings"
	"time"

	"parts-service/internal/domain"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// apiResponse is the envelope every vehicle API endpoint answers with.
type apiResponse[T any] struct {
	Count          int    `json:"Count"`
	Message        string `json:"Message"`
	SearchCriteria string `json:"SearchCriteria"`
	Results        []T    `json:"Results"`
}

type apiMake struct {
	MakeID   int    `json:"Make_ID"`
	MakeName string `json:"Make_Name"`
}

type apiModel struct {
	MakeID    int    `json:"Make_ID"`
	MakeName  string `json:"Make_Name"`
	ModelID   int    `json:"Model_ID"`
	ModelName string `json:"Model_Name"`
}

// popularMakes trims the API's ten thousand makes to those sold locally.
var popularMakes = map[string]bool{
	"TOYOTA": true, "HONDA": true, "NISSAN": true, "HYUNDAI": true, "KIA": true,
	"MERCEDES-BENZ": true, "BMW": true, "VOLKSWAGEN": true, "FORD": true, "MITSUBISHI": true,
	"CHEVROLET": true, "MAZDA": true, "SUBARU": true, "SUZUKI": true, "PEUGEOT": true,
	"RENAULT": true, "ISUZU": true, "LEXUS": true, "AUDI": true, "LAND ROVER": true,
	"JEEP": true, "DODGE": true, "VOLVO": true, "FIAT": true, "OPEL": true,
	"DAEWOO": true, "DAIHATSU": true, "ACURA": true, "INFINITI": true, "CITROEN": true,
}

type VehicleClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewVehicleClient(baseURL string, timeout time.Duration) *VehicleClient {
	return &VehicleClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// GetAllMakes returns the popular makes, display-cased and sorted by name.
func (c *VehicleClient) GetAllMakes(ctx context.Context) ([]domain.VehicleMake, error) {
	var resp apiResponse[apiMake]
	if err := c.get(ctx, "/GetAllMakes?format=json", &resp); err != nil {
		return nil, err
	}

	makes := []domain.VehicleMake{}
	for _, m := range resp.Results {
		if !popularMakes[strings.ToUpper(m.MakeName)] {
			continue
		}
		makes = append(makes, domain.VehicleMake{ID: m.MakeID, Name: FormatMakeName(m.MakeName)})
	}
	sort.SliceStable(makes, func(i, j int) bool { return makes[i].Name < makes[j].Name })
	return makes, nil
}

// GetModelsForMake returns every model the API knows for a make. Year is left zero.
func (c *VehicleClient) GetModelsForMake(ctx context.Context, makeID int) ([]domain.VehicleModel, error) {
	var resp apiResponse[apiModel]
	if err := c.get(ctx, fmt.Sprintf("/GetModelsForMakeId/%d?format=json", makeID), &resp); err != nil {
		return nil, err
	}
	return toModels(resp.Results, 0), nil
}

func (c *VehicleClient) GetModelsForMakeAndYear(ctx context.Context, makeID, year int) ([]domain.VehicleModel, error) {
	var resp apiResponse[apiModel]
	path := fmt.Sprintf("/GetModelsForMakeIdYear/makeId/%d/modelyear/%d?format=json", makeID, year)
	if err := c.get(ctx, path, &resp); err != nil {
		return nil, err
	}
	return toModels(resp.Results, year), nil
}

func (c *VehicleClient) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("vehicle api returned status %d", resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("vehicle api: decode: %w", err)
	}
	return nil
}

func toModels(results []apiModel, year int) []domain.VehicleModel {
	models := make([]domain.VehicleModel, 0, len(results))
	for _, m := range results {
		models = append(models, domain.VehicleModel{
			ID:     m.ModelID,
			Name:   m.ModelName,
			MakeID: m.MakeID,
			Year:   year,
		})
	}
	sort.SliceStable(models, func(i, j int) bool { return models[i].Name < models[j].Name })
	return models
}

var titleCaser = cases.Title(language.Und)

// FormatMakeName turns "MERCEDES-BENZ" into "Mercedes Benz" and "LAND ROVER"
// into "Land Rover".
func FormatMakeName(name string) string {
	words := strings.FieldsFunc(name, func(r rune) bool { return r == ' ' || r == '-' })
	for i, w := range words {
		words[i] = titleCaser.String(strings.ToLower(w))
	}
	return strings.Join(words, " ")
}
