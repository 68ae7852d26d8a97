package details

import (
	"github.com/gofiber/fiber/v2"

	buildingRoutes "otm_dashboard/internals/features/campus/buildings/route"
	roomRoutes "otm_dashboard/internals/features/campus/rooms/route"
)

func CampusRoutes(r fiber.Router) {
	buildingRoutes.BuildingRoutes(r)
	roomRoutes.RoomRoutes(r)
}
