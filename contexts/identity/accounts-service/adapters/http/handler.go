package httpadapter

import (
	"context"
	"log/slog"

	"confera/contexts/identity/accounts-service/application"
	"confera/contexts/identity/accounts-service/ports"
	httptransport "confera/contexts/identity/accounts-service/transport/http"
)

type Handler struct {
	Service application.Service
	Logger  *slog.Logger
}

func (h Handler) SignUpHandler(ctx context.Context, role string, req httptransport.SignUpRequest) (httptransport.SignUpResponse, error) {
	id, err := h.Service.SignUp(ctx, ports.SignUpInput{
		Role:         role,
		Name:         req.Name,
		Email:        req.Email,
		Password:     req.Password,
		Company:      req.Company,
		Organisation: req.Organisation,
	})
	if err != nil {
		return httptransport.SignUpResponse{}, err
	}
	return httptransport.SignUpResponse{
		Message: "Account created successfully",
		UserID:  id,
	}, nil
}

func (h Handler) SignInHandler(ctx context.Context, role string, req httptransport.SignInRequest) (httptransport.SignInResponse, error) {
	result, err := h.Service.SignIn(ctx, ports.SignInInput{
		Role:     role,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return httptransport.SignInResponse{}, err
	}
	return httptransport.SignInResponse{
		Message: "Signed in successfully",
		UserID:  result.UserID,
		Name:    result.Name,
		Token:   result.Token,
	}, nil
}

func (h Handler) GetProfileHandler(ctx context.Context, role string, userID string) (httptransport.ProfileResponse, error) {
	profile, err := h.Service.GetProfile(ctx, role, userID)
	if err != nil {
		return httptransport.ProfileResponse{}, err
	}
	return httptransport.ProfileResponse{
		Message: "Profile fetched successfully",
		Profile: profileDTO(profile),
	}, nil
}

func (h Handler) UpdateProfileHandler(ctx context.Context, role string, userID string, req httptransport.UpdateProfileRequest) (httptransport.ProfileResponse, error) {
	profile, err := h.Service.UpdateProfile(ctx, role, userID, ports.UpdateProfileInput{
		Name:         req.Name,
		Interests:    req.Interests,
		Skills:       req.Skills,
		Organisation: req.Organisation,
		Bio:          req.Bio,
		Topics:       req.Topics,
		Company:      req.Company,
	})
	if err != nil {
		return httptransport.ProfileResponse{}, err
	}
	return httptransport.ProfileResponse{
		Message: "Profile updated successfully",
		Profile: profileDTO(profile),
	}, nil
}

func profileDTO(profile ports.Profile) httptransport.ProfileDTO {
	return httptransport.ProfileDTO{
		UserID:       profile.UserID,
		Role:         profile.Role,
		Name:         profile.Name,
		Email:        profile.Email,
		Interests:    profile.Interests,
		Skills:       profile.Skills,
		Organisation: profile.Organisation,
		Bio:          profile.Bio,
		Topics:       profile.Topics,
		Company:      profile.Company,
	}
}
