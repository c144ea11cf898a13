package dto

import (
	"docintel-be/internal/pkg/graph"
)

type MicrosoftConfigStatusResponse struct {
	MicrosoftGraphEnabled bool   `json:"microsoftGraphEnabled"`
	Message               string `json:"message"`
}

type MicrosoftFilesResponse struct {
	Files []graph.MicrosoftFileInfo `json:"files"`
}
