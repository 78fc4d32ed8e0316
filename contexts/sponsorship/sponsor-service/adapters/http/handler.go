package httpadapter

import (
	"context"
	"log/slog"

	"confera/contexts/sponsorship/sponsor-service/application"
	"confera/contexts/sponsorship/sponsor-service/ports"
	httptransport "confera/contexts/sponsorship/sponsor-service/transport/http"
)

type Handler struct {
	Service application.Service
	Logger  *slog.Logger
}

func (h Handler) GetBoothHandler(ctx context.Context, sponsorID string) (httptransport.BoothResponse, error) {
	booth, err := h.Service.GetBooth(ctx, sponsorID)
	if err != nil {
		return httptransport.BoothResponse{}, err
	}
	return httptransport.BoothResponse{
		Message: "Booth fetched successfully",
		Booth:   boothDTO(booth),
	}, nil
}

func (h Handler) AddResourceHandler(ctx context.Context, sponsorID string, req httptransport.AddResourceRequest) (httptransport.BoothResponse, error) {
	booth, err := h.Service.AddBoothResource(ctx, ports.AddResourceInput{
		SponsorID: sponsorID,
		Title:     req.Title,
		URL:       req.URL,
		Type:      req.Type,
	})
	if err != nil {
		return httptransport.BoothResponse{}, err
	}
	return httptransport.BoothResponse{
		Message: "Booth resource added successfully",
		Booth:   boothDTO(booth),
	}, nil
}

func boothDTO(booth ports.Booth) httptransport.BoothDTO {
	resources := make([]httptransport.BoothResourceDTO, 0, len(booth.Resources))
	for _, resource := range booth.Resources {
		resources = append(resources, httptransport.BoothResourceDTO{
			Title: resource.Title,
			URL:   resource.URL,
			Type:  resource.Type,
		})
	}
	return httptransport.BoothDTO{
		SponsorID:       booth.SponsorID,
		Name:            booth.Name,
		Company:         booth.Company,
		Resources:       resources,
		EventsSponsored: booth.EventsSponsored,
	}
}
