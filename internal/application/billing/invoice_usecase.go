package billing

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/kullanici/fatura-pro/internal/application/dto"
	"github.com/kullanici/fatura-pro/internal/domain"
	domainbilling "github.com/kullanici/fatura-pro/internal/domain/billing"
	"github.com/kullanici/fatura-pro/internal/domain/entity"
	"github.com/kullanici/fatura-pro/internal/domain/repository"
	"github.com/kullanici/fatura-pro/pkg/currency"
)

// InvoiceUseCase fatura yaşam döngüsünü yönetir: anlık hesap (preview), taslak
// kaydı, kesinleştirme ve sorgular. Hesaplayıcı her kayıttan önce eşzamanlı
// olarak çağrılır; türetilmiş alanlar asla istemciden alınmaz.
type InvoiceUseCase struct {
	invoiceRepo  repository.InvoiceRepository
	customerRepo repository.CustomerRepository
	companyRepo  repository.CompanyRepository
	txRunner     TxRunner
}

// NewInvoiceUseCase kullanım senaryosunu kurar.
func NewInvoiceUseCase(
	invoiceRepo repository.InvoiceRepository,
	customerRepo repository.CustomerRepository,
	companyRepo repository.CompanyRepository,
	txRunner TxRunner,
) *InvoiceUseCase {
	return &InvoiceUseCase{
		invoiceRepo:  invoiceRepo,
		customerRepo: customerRepo,
		companyRepo:  companyRepo,
		txRunner:     txRunner,
	}
}

// Preview kaydetmeden toplamları hesaplar. UI her alan düzenlemesinde çağırır;
// hesap eşzamanlıdır ve yan etkisizdir.
func (uc *InvoiceUseCase) Preview(in dto.PreviewInvoiceRequest) *dto.PreviewInvoiceResponse {
	totals := domainbilling.Calculate(
		dto.LinesToEntities(in.Lines),
		dto.ClampPercent(in.DiscountPercent),
	)
	lines := make([]dto.InvoiceLineResponse, 0, len(totals.Lines))
	for _, l := range totals.Lines {
		lines = append(lines, dto.LineFromEntity(l))
	}
	return &dto.PreviewInvoiceResponse{
		Lines:  lines,
		Totals: totalsToResponse(totals),
	}
}

// CreateDraft taslak fatura oluşturur. Alıcı bilgisi katalogdan kopyalanır;
// toplamlar kayıttan önce yeniden hesaplanır.
func (uc *InvoiceUseCase) CreateDraft(ctx context.Context, in dto.SaveInvoiceRequest) (*dto.InvoiceResponse, error) {
	buyer, date, err := uc.resolveDraftInput(in)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	inv := &entity.Invoice{
		ID:              uuid.New().String(),
		Date:            date,
		Buyer:           buyer,
		Lines:           uc.linesWithIDs(dto.LinesToEntities(in.Lines)),
		DiscountPercent: dto.ClampPercent(in.DiscountPercent),
		Note:            in.Note,
		Status:          entity.InvoiceStatusDraft,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	uc.snapshotSeller(inv)
	domainbilling.Apply(inv)

	if err := uc.invoiceRepo.Create(inv); err != nil {
		return nil, err
	}
	return invoiceToResponse(inv), nil
}

// UpdateDraft taslağı günceller. Kesinleşmiş fatura düzenlenemez
// (domain.ErrConflict).
func (uc *InvoiceUseCase) UpdateDraft(ctx context.Context, id string, in dto.SaveInvoiceRequest) (*dto.InvoiceResponse, error) {
	inv, err := uc.invoiceRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, domain.ErrNotFound
	}
	if inv.Status == entity.InvoiceStatusFinalized {
		return nil, domain.ErrConflict
	}

	buyer, date, err := uc.resolveDraftInput(in)
	if err != nil {
		return nil, err
	}

	inv.Date = date
	inv.Buyer = buyer
	inv.Lines = uc.linesWithIDs(dto.LinesToEntities(in.Lines))
	inv.DiscountPercent = dto.ClampPercent(in.DiscountPercent)
	inv.Note = in.Note
	inv.UpdatedAt = time.Now()
	uc.snapshotSeller(inv)
	domainbilling.Apply(inv)

	if err := uc.invoiceRepo.Update(inv); err != nil {
		return nil, err
	}
	return invoiceToResponse(inv), nil
}

// Finalize taslağı kesinleştirir. Doğrulama listesi boş değilse hiçbir durum
// değişmez ve liste domain.ValidationError olarak döner. Başarıda numara
// ataması, satıcı kopyasının dondurulması, sıra numarası tüketimi ve durum
// geçişi tek işlemde kalıcı olur.
func (uc *InvoiceUseCase) Finalize(ctx context.Context, id string) (*dto.InvoiceResponse, error) {
	inv, err := uc.invoiceRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, domain.ErrNotFound
	}
	if inv.Status == entity.InvoiceStatusFinalized {
		return nil, domain.ErrConflict
	}

	company, err := uc.companyRepo.Get()
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, &domain.ValidationError{Messages: []string{"firma profili tanımlı değil"}}
	}

	// Satıcı kopyası kesinleştirme anındaki profil; toplamlar son kez türetilir.
	inv.Seller = sellerParty(company)
	domainbilling.Apply(inv)

	if errs := domainbilling.ValidateForFinalize(inv); len(errs) > 0 {
		return nil, &domain.ValidationError{Messages: errs}
	}

	err = uc.txRunner.RunInvoicing(ctx, func(
		invoiceRepo repository.InvoiceRepository,
		companyRepo repository.CompanyRepository,
	) error {
		seq, err := companyRepo.ConsumeSequence(company.ID)
		if err != nil {
			return err
		}
		if inv.Number == "" {
			inv.Number = domainbilling.InvoiceNumber(company.InvoiceSeries, inv.Date.Year(), seq)
		}
		inv.Status = entity.InvoiceStatusFinalized
		inv.UpdatedAt = time.Now()
		return invoiceRepo.Update(inv)
	})
	if err != nil {
		return nil, err
	}
	return invoiceToResponse(inv), nil
}

// GetByID faturayı döndürür.
func (uc *InvoiceUseCase) GetByID(ctx context.Context, id string) (*dto.InvoiceResponse, error) {
	inv, err := uc.invoiceRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, domain.ErrNotFound
	}
	return invoiceToResponse(inv), nil
}

// List faturaları sayfalı listeler; status boş değilse filtre uygulanır.
func (uc *InvoiceUseCase) List(ctx context.Context, status string, limit, offset int) (*dto.InvoiceListResponse, error) {
	list, err := uc.invoiceRepo.List(status, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.InvoiceResponse, 0, len(list))
	for _, inv := range list {
		items = append(items, *invoiceToResponse(inv))
	}
	return &dto.InvoiceListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete taslak faturayı siler. Kesinleşmiş fatura silinemez.
func (uc *InvoiceUseCase) Delete(ctx context.Context, id string) error {
	inv, err := uc.invoiceRepo.GetByID(id)
	if err != nil {
		return err
	}
	if inv == nil {
		return domain.ErrNotFound
	}
	if inv.Status == entity.InvoiceStatusFinalized {
		return domain.ErrConflict
	}
	return uc.invoiceRepo.Delete(id)
}

// resolveDraftInput alıcı kopyasını ve fatura tarihini hazırlar.
func (uc *InvoiceUseCase) resolveDraftInput(in dto.SaveInvoiceRequest) (entity.Party, time.Time, error) {
	if in.CustomerID == "" {
		return entity.Party{}, time.Time{}, domain.ErrInvalidInput
	}
	customer, err := uc.customerRepo.GetByID(in.CustomerID)
	if err != nil {
		return entity.Party{}, time.Time{}, err
	}
	if customer == nil {
		return entity.Party{}, time.Time{}, domain.ErrNotFound
	}

	date := time.Now()
	if in.Date != "" {
		parsed, err := time.Parse("2006-01-02", in.Date)
		if err != nil {
			return entity.Party{}, time.Time{}, domain.ErrInvalidInput
		}
		date = parsed
	}

	// Derin değer kopyası: katalog kaydına referans tutulmaz.
	buyer := entity.Party{
		Kind:      customer.Kind,
		Name:      customer.Name,
		TaxID:     customer.TaxID,
		TaxOffice: customer.TaxOffice,
		Address:   customer.Address,
		Email:     customer.Email,
		Phone:     customer.Phone,
	}
	return buyer, date, nil
}

// snapshotSeller taslak kayıtlarında satıcı kopyasını günceller; profil henüz
// yoksa boş kalır ve kesinleştirme doğrulaması engeller.
func (uc *InvoiceUseCase) snapshotSeller(inv *entity.Invoice) {
	company, err := uc.companyRepo.Get()
	if err != nil || company == nil {
		return
	}
	inv.Seller = sellerParty(company)
}

// linesWithIDs satır kimliklerini tamamlar; sıra korunur.
func (uc *InvoiceUseCase) linesWithIDs(lines []entity.InvoiceLine) []entity.InvoiceLine {
	for i := range lines {
		if lines[i].ID == "" {
			lines[i].ID = uuid.New().String()
		}
	}
	return lines
}

func sellerParty(c *entity.Company) entity.Party {
	return entity.Party{
		Name:      c.Name,
		TaxID:     c.VKN,
		TaxOffice: c.TaxOffice,
		Address:   c.Address,
		Email:     c.Email,
		Phone:     c.Phone,
	}
}

func totalsToResponse(t domainbilling.Totals) dto.TotalsResponse {
	return dto.TotalsResponse{
		Subtotal:            t.Subtotal,
		DiscountTotal:       t.DiscountTotal,
		TaxTotal:            t.TaxTotal,
		GrandTotal:          t.GrandTotal,
		GrandTotalFormatted: currency.FormatTRY(t.GrandTotal),
	}
}

func invoiceToResponse(inv *entity.Invoice) *dto.InvoiceResponse {
	lines := make([]dto.InvoiceLineResponse, 0, len(inv.Lines))
	for _, l := range inv.Lines {
		lines = append(lines, dto.LineFromEntity(l))
	}
	return &dto.InvoiceResponse{
		ID:              inv.ID,
		Number:          inv.Number,
		Date:            inv.Date.Format("2006-01-02"),
		Seller:          dto.PartyFromEntity(inv.Seller),
		Buyer:           dto.PartyFromEntity(inv.Buyer),
		Lines:           lines,
		DiscountPercent: inv.DiscountPercent,
		Totals: dto.TotalsResponse{
			Subtotal:            inv.Subtotal,
			DiscountTotal:       inv.DiscountTotal,
			TaxTotal:            inv.TaxTotal,
			GrandTotal:          inv.GrandTotal,
			GrandTotalFormatted: currency.FormatTRY(inv.GrandTotal),
		},
		Note:   inv.Note,
		Status: inv.Status,
	}
}
