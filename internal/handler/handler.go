package handler

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"

	"github.com/Dutt123/ossvacationtracker/internal/config"
	"github.com/Dutt123/ossvacationtracker/internal/repository"
)

type Handler struct {
	validate   *validator.Validate
	config     *config.Config
	repository *repository.Repository
	translator ut.Translator

	// mailChannel and redisClient are nil when the corresponding
	// subsystem is not configured.
	mailChannel *amqp.Channel
	redisClient *redis.Client

	adminPINHash  []byte
	memberPINHash []byte

	Mux *chi.Mux
}

func NewHandler(cfg *config.Config, repo *repository.Repository, mailCh *amqp.Channel, rdb *redis.Client) (*Handler, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())
	enLocale := en.New()
	uni := ut.New(enLocale, enLocale)
	trans, _ := uni.GetTranslator("en")
	if err := en_translations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, err
	}

	adminPINHash, err := bcrypt.GenerateFromPassword([]byte(cfg.Auth.AdminPIN), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	memberPINHash, err := bcrypt.GenerateFromPassword([]byte(cfg.Auth.MemberPIN), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	return &Handler{
		validate:   validate,
		config:     cfg,
		repository: repo,
		translator: trans,

		mailChannel: mailCh,
		redisClient: rdb,

		adminPINHash:  adminPINHash,
		memberPINHash: memberPINHash,

		Mux: chi.NewRouter(),
	}, nil
}

func (h *Handler) RegisterRoutes() {
	h.Mux.Use(h.logger)
	h.Mux.Use(h.recoverer)

	h.Mux.Route("/api", func(r chi.Router) {
		r.Route("/members", func(r chi.Router) {
			r.Get("/", h.GetMembers)
			r.Post("/", h.AddMember)
			r.Put("/{name}", h.RenameMember)
			r.Delete("/{name}", h.RemoveMember)
		})

		r.Route("/admins", func(r chi.Router) {
			r.Get("/", h.GetAdmins)
			r.Post("/", h.AddAdmin)
		})

		r.Route("/leaves", func(r chi.Router) {
			r.Get("/", h.GetLeaves)
			r.Post("/", h.CreateLeave)
			r.Delete("/{id}", h.DeleteLeave)
			r.Put("/{id}/approve", h.ApproveLeave)
		})

		r.Get("/onduty", h.GetOnDuty)
		r.Get("/onduty/pending-rank", h.GetPendingRank)

		r.Route("/shifts", func(r chi.Router) {
			r.Get("/", h.GetShifts)
			r.Post("/", h.AssignShifts)
		})

		r.Get("/data", h.GetData)
		r.Post("/validate-pin", h.ValidatePIN)
	})
}
