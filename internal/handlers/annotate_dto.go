package handlers

import (
	"fmt"

	"github.com/gorilla/schema"
	"github.com/vancomm/minefield-annotator/internal/mines"
)

var dec = schema.NewDecoder()

func init() {
	dec.IgnoreUnknownKeys(true)
}

type AnnotateParamsDTO struct {
	Mine   string `schema:"mine"`
	Empty  string `schema:"empty"`
	Strict bool   `schema:"strict"`
}

func ParseAnnotateParamsDTO(src map[string][]string) (AnnotateParamsDTO, error) {
	var dto AnnotateParamsDTO
	err := dec.Decode(&dto, src)
	return dto, err
}

func (dto AnnotateParamsDTO) Annotator() (*mines.Annotator, error) {
	def := mines.DefaultMarkers()
	mine, err := mines.ParseMarker(dto.Mine, def.Mine)
	if err != nil {
		return nil, fmt.Errorf("mine: %w", err)
	}
	empty, err := mines.ParseMarker(dto.Empty, def.Empty)
	if err != nil {
		return nil, fmt.Errorf("empty: %w", err)
	}
	markers := mines.Markers{Mine: mine, Empty: empty}
	if err := markers.Validate(); err != nil {
		return nil, err
	}
	return &mines.Annotator{Markers: markers, Strict: dto.Strict}, nil
}

type MinefieldDTO struct {
	Rows []string `json:"rows"`
}

type AnnotatedDTO struct {
	Rows  []string    `json:"rows"`
	Stats mines.Stats `json:"stats"`
}

func NewAnnotatedDTO(f *mines.Minefield) *AnnotatedDTO {
	return &AnnotatedDTO{
		Rows:  f.Render(),
		Stats: f.Stats(),
	}
}
