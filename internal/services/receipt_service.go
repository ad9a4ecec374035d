package services

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/phpdave11/gofpdf"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"roomstay/internal/models"
)

// ReceiptService renders a PDF confirmation for a booking.
type ReceiptService struct {
	roomsRepo models.RoomsRepo
}

func NewReceiptService(roomsRepo models.RoomsRepo) *ReceiptService {
	return &ReceiptService{
		roomsRepo: roomsRepo,
	}
}

type receiptData struct {
	BookingID   string
	RoomID      string
	Location    string
	Price       float64
	BookingDate string
	CreatedAt   string
	HolderEmail string
}

// GenerateReceipt returns the PDF bytes and a download filename. The room is
// looked up best-effort: bookings do not validate room existence, so a
// missing room renders with placeholders instead of failing.
func (rs *ReceiptService) GenerateReceipt(ctx context.Context, booking *models.Booking, holderEmail string) ([]byte, string, error) {
	if booking == nil {
		return nil, "", fmt.Errorf("booking is nil")
	}

	data := receiptData{
		BookingID:   booking.ID.Hex(),
		RoomID:      booking.RoomID,
		BookingDate: formatDate(booking.BookingDate),
		CreatedAt:   booking.CreatedAt.Format("2006-01-02 15:04"),
		HolderEmail: holderEmail,
	}

	if roomId, err := primitive.ObjectIDFromHex(booking.RoomID); err == nil {
		if room, err := rs.roomsRepo.GetRoomByID(ctx, roomId); err == nil {
			data.Location = room.Location
			data.Price = room.Price
		}
	}

	return buildReceiptPDF(data)
}

func buildReceiptPDF(d receiptData) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Booking Confirmation", false)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "BOOKING CONFIRMATION")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Booking ID   : %s", safe(d.BookingID, "-")),
		fmt.Sprintf("Guest        : %s", safe(d.HolderEmail, "-")),
		fmt.Sprintf("Room         : %s", safe(d.Location, d.RoomID)),
		fmt.Sprintf("Stay date    : %s", safe(d.BookingDate, "-")),
		fmt.Sprintf("Booked on    : %s", safe(d.CreatedAt, "-")),
	}
	if d.Price > 0 {
		lines = append(lines, fmt.Sprintf("Price        : VND %.0f", d.Price))
	}
	for _, line := range lines {
		pdf.Cell(0, 8, line)
		pdf.Ln(8)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", fmt.Errorf("failed to render receipt: %v", err)
	}

	filename := fmt.Sprintf("booking-%s.pdf", d.BookingID)
	return buf.Bytes(), filename, nil
}

func safe(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

func formatDate(raw string) string {
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return raw
	}
	return t.Format("2006-01-02")
}
