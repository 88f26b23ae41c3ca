// File: /services/itinerario_service.go
package services

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"teamsync-api/models"
	"teamsync-api/utils"
)

const maxAtividadesItinerario = 3

// ItinerarioGerado is a stored itinerary with its activities resolved.
type ItinerarioGerado struct {
	models.Itinerario
	Detalhes []models.Atividade `json:"detalhes"`
}

type ItinerarioService struct {
	itinerarios ItinerarioRepository
	atividades  AtividadeRepository
	empresas    EmpresaRepository
	logger      *slog.Logger
}

func NewItinerarioService(itinerarios ItinerarioRepository, atividades AtividadeRepository, empresas EmpresaRepository, logger *slog.Logger) *ItinerarioService {
	return &ItinerarioService{itinerarios: itinerarios, atividades: atividades, empresas: empresas, logger: logger}
}

// Gerar builds a day plan from up to three approved activities, the given
// ones or the best rated, and suggests where to eat.
func (s *ItinerarioService) Gerar(ctx context.Context, session *Session, req models.ItinerarioRequest) (*ItinerarioGerado, error) {
	if err := requireSession(session, models.UserTipoEmpresa); err != nil {
		return nil, err
	}
	empresa, err := s.empresas.FindByUserID(ctx, session.UserID)
	if err != nil {
		if isNotFound(err) {
			return nil, notFound("Empresa profile not found")
		}
		return nil, err
	}
	data, err := utils.ParseDate(req.Data)
	if err != nil {
		return nil, invalidInput("Data inválida")
	}

	var atividades []models.Atividade
	if len(req.AtividadeIDs) > 0 {
		found, err := s.atividades.FindByIDs(ctx, req.AtividadeIDs)
		if err != nil {
			return nil, err
		}
		for _, a := range found {
			if a.Aprovada {
				atividades = append(atividades, a)
			}
		}
	} else {
		atividades, err = s.atividades.Search(ctx, models.AtividadeFiltro{
			SomenteAprovadas: true,
			OrderByRating:    true,
			Limit:            maxAtividadesItinerario,
		})
		if err != nil {
			return nil, err
		}
	}
	if len(atividades) > maxAtividadesItinerario {
		atividades = atividades[:maxAtividadesItinerario]
	}
	if len(atividades) == 0 {
		return nil, invalidInput("Nenhuma atividade disponível para o itinerário")
	}

	ids := make(models.StringList, len(atividades))
	for i, a := range atividades {
		ids[i] = a.ID
	}
	restaurante := sugerirRestaurante(atividades[0].Localizacao)

	itinerario := &models.Itinerario{
		ID:                  uuid.New().String(),
		EmpresaID:           empresa.ID,
		Data:                data,
		Atividades:          ids,
		RestauranteSugerido: &restaurante,
	}
	if err := s.itinerarios.Create(ctx, itinerario); err != nil {
		return nil, err
	}
	return &ItinerarioGerado{Itinerario: *itinerario, Detalhes: atividades}, nil
}

func sugerirRestaurante(localizacao string) string {
	local := strings.TrimSpace(strings.Split(localizacao, ",")[0])
	if local == "" {
		return "Restaurante Parceiro"
	}
	return "Restaurante Parceiro em " + local
}

func (s *ItinerarioService) ListByEmpresa(ctx context.Context, session *Session, empresaID string) ([]models.Itinerario, error) {
	if err := requireSession(session); err != nil {
		return nil, err
	}
	empresa, err := s.empresas.FindByID(ctx, empresaID)
	if err != nil {
		if isNotFound(err) {
			return nil, notFound("Empresa not found")
		}
		return nil, err
	}
	if empresa.UserID != session.UserID && !session.IsAdmin() {
		return nil, forbidden("Not authorized")
	}
	return s.itinerarios.ListByEmpresa(ctx, empresaID)
}
