package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/troopay/troopay-backend/internal/authctx"
	"github.com/troopay/troopay-backend/internal/dto"
	"github.com/troopay/troopay-backend/internal/services"
)

type MemberHandler struct {
	memberService *services.MemberService
}

func NewMemberHandler(memberService *services.MemberService) *MemberHandler {
	return &MemberHandler{memberService: memberService}
}

func (h *MemberHandler) ListMembers(c *fiber.Ctx) error {
	groupID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid group id")
	}

	members, err := h.memberService.ListMembers(c.Context(), groupID)
	if err != nil {
		if errors.Is(err, services.ErrGroupNotFound) {
			return c.SendStatus(fiber.StatusNotFound)
		}
		return err
	}

	return c.JSON(dto.MembersResponse{Members: members})
}

func (h *MemberHandler) RecentMembers(c *fiber.Ctx) error {
	userID, err := authctx.UserID(c)
	if err != nil {
		return c.SendStatus(fiber.StatusUnauthorized)
	}

	members, err := h.memberService.RecentMembers(c.Context(), userID)
	if err != nil {
		return err
	}

	return c.JSON(dto.MembersResponse{Members: members})
}

func (h *MemberHandler) UpdateMembers(c *fiber.Ctx) error {
	groupID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid group id")
	}

	var req dto.UpdateMembersRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	if err := h.memberService.UpdateMembers(c.Context(), groupID, req.Members); err != nil {
		if errors.Is(err, services.ErrGroupNotFound) {
			return c.SendStatus(fiber.StatusNotFound)
		}
		return err
	}

	return c.JSON(dto.StatusResponse{Status: true})
}

func (h *MemberHandler) RemoveMember(c *fiber.Ctx) error {
	groupID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid group id")
	}
	userID, err := uuid.Parse(c.Params("user_id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid user id")
	}

	if err := h.memberService.RemoveMember(c.Context(), groupID, userID); err != nil {
		if errors.Is(err, services.ErrMembershipNotFound) {
			return c.SendStatus(fiber.StatusNotFound)
		}
		return err
	}

	return c.JSON(dto.StatusResponse{Status: true})
}
