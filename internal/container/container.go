package container

import (
	"log/slog"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/supabase-community/supabase-go"
	"go.mongodb.org/mongo-driver/mongo"
	"roomstay/internal/models"
	"roomstay/internal/services"
)

// Container holds all application dependencies
type Container struct {
	Logger     *slog.Logger
	Cloudinary *cloudinary.Cloudinary
	// Database clients
	SupabaseClient *supabase.Client
	MongoDBClient  *mongo.Client

	UserService    *services.UserService
	RoomsService   *services.RoomsService
	BookingService *services.BookingService
	ReceiptService *services.ReceiptService
}

// NewContainer creates a new dependency injection container
func NewContainer(
	logger *slog.Logger,
	cloudinary *cloudinary.Cloudinary,
	supabaseClient *supabase.Client,
	mongoDBClient *mongo.Client,
	supaUrl, supaKey string,
) *Container {
	supa := models.SupabaseNewRepo(supabaseClient, supaUrl, supaKey)
	mongo := models.MongodbNewRepo(mongoDBClient)

	userService := services.NewUserService(supa)
	roomsService := services.NewRoomsService(mongo)
	bookingService := services.NewBookingService(mongo)
	receiptService := services.NewReceiptService(mongo)

	return &Container{
		Logger:         logger,
		Cloudinary:     cloudinary,
		SupabaseClient: supabaseClient,
		MongoDBClient:  mongoDBClient,
		UserService:    userService,
		RoomsService:   roomsService,
		BookingService: bookingService,
		ReceiptService: receiptService,
	}
}
