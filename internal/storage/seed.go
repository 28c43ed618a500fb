package storage

import "github.com/lsoto/mantcal/internal/models"

// SeedUsers returns the built-in user directory the store is seeded with at
// first run. These are the same records the original deployment shipped
// with; keeping them verbatim preserves existing sessions and createdBy
// references.
func SeedUsers() []models.User {
	return []models.User{
		{Username: "encargado1_sanmartin", Password: "sanmartin1", Role: models.RoleManager, Plant: models.PlantSanMartin, Name: "Encargado 1 San Martín"},
		{Username: "encargado1_versalles", Password: "versalles1", Role: models.RoleManager, Plant: models.PlantVersalles, Name: "Encargado 1 Versalles"},
		{Username: "encargado2_versalles", Password: "versalles2", Role: models.RoleManager, Plant: models.PlantVersalles, Name: "Encargado 2 Versalles"},
		{Username: "soledad", Password: "admin1", Role: models.RoleAdmin, Name: "Soledad"},
		{Username: "luis", Password: "admin2", Role: models.RoleAdmin, Name: "Luis"},
		{Username: "usuario1", Password: "user1", Role: models.RoleViewer, Name: "Usuario 1"},
	}
}
