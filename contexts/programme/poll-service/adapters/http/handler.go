package httpadapter

import (
	"context"
	"log/slog"

	"confera/contexts/programme/poll-service/application"
	"confera/contexts/programme/poll-service/ports"
	httptransport "confera/contexts/programme/poll-service/transport/http"
	"confera/internal/domain"
)

type Handler struct {
	Service application.Service
	Logger  *slog.Logger
}

func (h Handler) CreatePollHandler(ctx context.Context, sessionID string, req httptransport.CreatePollRequest) (httptransport.PollsResponse, error) {
	polls, err := h.Service.CreatePoll(ctx, ports.CreatePollInput{
		SessionID: sessionID,
		Question:  req.Question,
		Options:   req.Options,
	})
	if err != nil {
		return httptransport.PollsResponse{}, err
	}
	return httptransport.PollsResponse{
		Message: "Poll created successfully",
		Polls:   pollDTOs(polls),
	}, nil
}

func (h Handler) ListPollsHandler(ctx context.Context, sessionID string) (httptransport.PollsResponse, error) {
	polls, err := h.Service.ListPolls(ctx, sessionID)
	if err != nil {
		return httptransport.PollsResponse{}, err
	}
	return httptransport.PollsResponse{
		Message: "Polls fetched successfully",
		Polls:   pollDTOs(polls),
	}, nil
}

func (h Handler) VoteHandler(ctx context.Context, sessionID string, pollID string, req httptransport.VoteRequest) (httptransport.VoteResponse, error) {
	poll, err := h.Service.RecordVote(ctx, sessionID, pollID, req.Option)
	if err != nil {
		return httptransport.VoteResponse{}, err
	}
	return httptransport.VoteResponse{
		Message: "Vote recorded successfully",
		Poll:    pollDTO(poll),
	}, nil
}

func (h Handler) PollResultsHandler(ctx context.Context, sessionID string, pollID string) (httptransport.PollResultsResponse, error) {
	results, err := h.Service.PollResults(ctx, sessionID, pollID)
	if err != nil {
		return httptransport.PollResultsResponse{}, err
	}
	resp := httptransport.PollResultsResponse{Message: "Poll results fetched successfully"}
	resp.Results.PollID = results.PollID
	resp.Results.Question = results.Question
	resp.Results.Options = results.Options
	resp.Results.Responses = results.Responses
	resp.Results.TotalVotes = results.TotalVotes
	return resp, nil
}

func pollDTO(poll domain.Poll) httptransport.PollDTO {
	return httptransport.PollDTO{
		PollID:    poll.ID,
		Question:  poll.Question,
		Options:   poll.Options,
		Responses: poll.Responses,
	}
}

func pollDTOs(polls []domain.Poll) []httptransport.PollDTO {
	items := make([]httptransport.PollDTO, 0, len(polls))
	for _, poll := range polls {
		items = append(items, pollDTO(poll))
	}
	return items
}
