package apiv1

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ocarena/oc-api/internal/entities/game"
	charsvc "github.com/ocarena/oc-api/internal/services/character"
)

// CreateCharacter creates the caller's one character
func (h *Handler) CreateCharacter(c echo.Context) error {
	id, err := playerID(c)
	if err != nil {
		return writeError(c, err)
	}

	var req createCharacterRequest
	if err := h.bindAndValidate(c, &req); err != nil {
		return writeError(c, err)
	}

	out, err := h.characters.CreateCharacter(c.Request().Context(), &charsvc.CreateCharacterInput{
		PlayerID:       id,
		Name:           req.Name,
		Backstory:      req.Backstory,
		Avatar:         req.Avatar,
		SpecialAbility: req.SpecialAbility,
		Stats: game.Stats{
			Strength:     req.Strength,
			Speed:        req.Speed,
			Intelligence: req.Intelligence,
		},
		PowerNames: req.Powers,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, characterResponse{
		Character: out.Character,
		Title:     out.Title,
	})
}

// GetCharacter returns any player's character page
func (h *Handler) GetCharacter(c echo.Context) error {
	out, err := h.characters.GetCharacter(c.Request().Context(), &charsvc.GetCharacterInput{
		PlayerID: c.Param("playerID"),
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, characterResponse{
		Character: out.Character,
		Title:     out.Title,
		Banned:    out.Banned,
	})
}

// UpdateProfile applies a cosmetic edit to the caller's character
func (h *Handler) UpdateProfile(c echo.Context) error {
	id, err := playerID(c)
	if err != nil {
		return writeError(c, err)
	}

	var req updateProfileRequest
	if err := h.bindAndValidate(c, &req); err != nil {
		return writeError(c, err)
	}

	out, err := h.characters.UpdateProfile(c.Request().Context(), &charsvc.UpdateProfileInput{
		PlayerID:       id,
		Backstory:      req.Backstory,
		Avatar:         req.Avatar,
		SpecialAbility: req.SpecialAbility,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, characterResponse{Character: out.Character})
}

// ListPowers returns the catalog plus the caller's custom powers. Without
// an identity header only the fixed catalog is returned.
func (h *Handler) ListPowers(c echo.Context) error {
	id := c.Request().Header.Get(PlayerIDHeader)

	out, err := h.characters.ListPowers(c.Request().Context(), &charsvc.ListPowersInput{
		PlayerID: id,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, powersResponse{Powers: out.Powers})
}

// CreateCustomPower creates a custom power for the caller
func (h *Handler) CreateCustomPower(c echo.Context) error {
	id, err := playerID(c)
	if err != nil {
		return writeError(c, err)
	}

	var req createCustomPowerRequest
	if err := h.bindAndValidate(c, &req); err != nil {
		return writeError(c, err)
	}

	out, err := h.characters.CreateCustomPower(c.Request().Context(), &charsvc.CreateCustomPowerInput{
		PlayerID: id,
		Power: game.Power{
			Name:        req.Name,
			Attack:      req.Attack,
			Defense:     req.Defense,
			Magic:       req.Magic,
			Description: req.Description,
		},
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, powersResponse{Powers: out.Powers})
}

// Leaderboard returns the strongest characters
func (h *Handler) Leaderboard(c echo.Context) error {
	out, err := h.characters.Leaderboard(c.Request().Context(), &charsvc.LeaderboardInput{})
	if err != nil {
		return writeError(c, err)
	}

	entries := make([]leaderboardEntryResponse, 0, len(out.Entries))
	for _, e := range out.Entries {
		entries = append(entries, leaderboardEntryResponse{
			Rank:       e.Rank,
			PlayerID:   e.PlayerID,
			Name:       e.Name,
			Avatar:     e.Avatar,
			TotalPower: e.TotalPower,
			Wins:       e.Wins,
			Title:      e.Title,
		})
	}

	return c.JSON(http.StatusOK, leaderboardResponse{Entries: entries})
}

// AddComment leaves a comment on a character page
func (h *Handler) AddComment(c echo.Context) error {
	id, err := playerID(c)
	if err != nil {
		return writeError(c, err)
	}

	var req addCommentRequest
	if err := h.bindAndValidate(c, &req); err != nil {
		return writeError(c, err)
	}

	out, err := h.characters.AddComment(c.Request().Context(), &charsvc.AddCommentInput{
		OwnerID:  c.Param("playerID"),
		AuthorID: id,
		Body:     req.Body,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, out.Comment)
}

// ListComments returns a character page's comments
func (h *Handler) ListComments(c echo.Context) error {
	out, err := h.characters.ListComments(c.Request().Context(), &charsvc.ListCommentsInput{
		OwnerID: c.Param("playerID"),
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, commentsResponse{Comments: out.Comments})
}
