package apiv1

import (
	"net/http"

	"github.com/labstack/echo/v4"

	battlesvc "github.com/ocarena/oc-api/internal/services/battle"
)

// SendRequest challenges another player to a battle
func (h *Handler) SendRequest(c echo.Context) error {
	id, err := playerID(c)
	if err != nil {
		return writeError(c, err)
	}

	var req sendRequestRequest
	if err := h.bindAndValidate(c, &req); err != nil {
		return writeError(c, err)
	}

	out, err := h.battles.SendRequest(c.Request().Context(), &battlesvc.SendRequestInput{
		ChallengerID: id,
		TargetID:     req.TargetID,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, requestResponse{Request: out.Request})
}

// ListRequests returns the caller's challenge inbox
func (h *Handler) ListRequests(c echo.Context) error {
	id, err := playerID(c)
	if err != nil {
		return writeError(c, err)
	}

	out, err := h.battles.ListRequests(c.Request().Context(), &battlesvc.ListRequestsInput{
		PlayerID: id,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, requestsResponse{Requests: out.Requests})
}

// AcceptRequest accepts a challenge from the named challenger
func (h *Handler) AcceptRequest(c echo.Context) error {
	id, err := playerID(c)
	if err != nil {
		return writeError(c, err)
	}

	out, err := h.battles.AcceptRequest(c.Request().Context(), &battlesvc.AcceptRequestInput{
		PlayerID:     id,
		ChallengerID: c.Param("challengerID"),
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, requestResponse{Request: out.Request})
}

// RejectRequest declines a challenge from the named challenger
func (h *Handler) RejectRequest(c echo.Context) error {
	id, err := playerID(c)
	if err != nil {
		return writeError(c, err)
	}

	if _, err := h.battles.RejectRequest(c.Request().Context(), &battlesvc.RejectRequestInput{
		PlayerID:     id,
		ChallengerID: c.Param("challengerID"),
	}); err != nil {
		return writeError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// Fight runs an accepted battle to its conclusion. The response carries the
// simulated rounds, the winner's new character, and the loser's destruction
// record.
func (h *Handler) Fight(c echo.Context) error {
	id, err := playerID(c)
	if err != nil {
		return writeError(c, err)
	}

	var req fightRequest
	if err := h.bindAndValidate(c, &req); err != nil {
		return writeError(c, err)
	}

	out, err := h.battles.Fight(c.Request().Context(), &battlesvc.FightInput{
		PlayerID:     id,
		ChallengerID: req.ChallengerID,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, fightResponse{
		WinnerID: out.WinnerID,
		LoserID:  out.LoserID,
		Outcome:  out.Outcome,
		Winner:   out.Winner,
		Record:   out.Record,
	})
}

// ListDestroyed returns the hall of destruction, newest first
func (h *Handler) ListDestroyed(c echo.Context) error {
	out, err := h.battles.ListDestroyed(c.Request().Context(), &battlesvc.ListDestroyedInput{})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, recordsResponse{Records: out.Records})
}

// GetDestroyed returns the destruction record for one fallen player
func (h *Handler) GetDestroyed(c echo.Context) error {
	out, err := h.battles.GetDestroyed(c.Request().Context(), &battlesvc.GetDestroyedInput{
		PlayerID: c.Param("playerID"),
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, recordResponse{Record: out.Record})
}
