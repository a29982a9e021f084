package billing_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appbilling "github.com/kullanici/fatura-pro/internal/application/billing"
	"github.com/kullanici/fatura-pro/internal/application/dto"
	"github.com/kullanici/fatura-pro/internal/domain"
	"github.com/kullanici/fatura-pro/internal/domain/entity"
	"github.com/kullanici/fatura-pro/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Bellek içi sahte depolar — kesinleştirme atomikliği ve kopya semantiği
// veritabanı olmadan doğrulanır.
// ──────────────────────────────────────────────────────────────────────────────

type fakeInvoiceRepo struct {
	items map[string]entity.Invoice // değer tutulur; dışarıya kopya verilir
}

func newFakeInvoiceRepo() *fakeInvoiceRepo {
	return &fakeInvoiceRepo{items: make(map[string]entity.Invoice)}
}

func (r *fakeInvoiceRepo) Create(inv *entity.Invoice) error {
	r.items[inv.ID] = *inv
	return nil
}

func (r *fakeInvoiceRepo) Update(inv *entity.Invoice) error {
	if _, ok := r.items[inv.ID]; !ok {
		return domain.ErrNotFound
	}
	r.items[inv.ID] = *inv
	return nil
}

func (r *fakeInvoiceRepo) GetByID(id string) (*entity.Invoice, error) {
	inv, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	cp := inv
	return &cp, nil
}

func (r *fakeInvoiceRepo) List(status string, limit, offset int) ([]*entity.Invoice, error) {
	var out []*entity.Invoice
	for _, inv := range r.items {
		if status != "" && inv.Status != status {
			continue
		}
		cp := inv
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeInvoiceRepo) Delete(id string) error {
	delete(r.items, id)
	return nil
}

type fakeCustomerRepo struct {
	items map[string]entity.Customer
}

func (r *fakeCustomerRepo) Create(c *entity.Customer) error { r.items[c.ID] = *c; return nil }
func (r *fakeCustomerRepo) Update(c *entity.Customer) error { r.items[c.ID] = *c; return nil }
func (r *fakeCustomerRepo) Delete(id string) error          { delete(r.items, id); return nil }

func (r *fakeCustomerRepo) GetByID(id string) (*entity.Customer, error) {
	c, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	cp := c
	return &cp, nil
}

func (r *fakeCustomerRepo) GetByTaxID(taxID string) (*entity.Customer, error) {
	for _, c := range r.items {
		if c.TaxID == taxID {
			cp := c
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeCustomerRepo) List(limit, offset int) ([]*entity.Customer, error) {
	return nil, nil
}

type fakeCompanyRepo struct {
	company *entity.Company
}

func (r *fakeCompanyRepo) Get() (*entity.Company, error) {
	if r.company == nil {
		return nil, nil
	}
	cp := *r.company
	return &cp, nil
}

func (r *fakeCompanyRepo) Save(c *entity.Company) error {
	cp := *c
	r.company = &cp
	return nil
}

func (r *fakeCompanyRepo) ConsumeSequence(companyID string) (int64, error) {
	seq := r.company.NextSequence
	r.company.NextSequence++
	return seq, nil
}

// fakeTxRunner işlemi taklit eder: fn hata dönerse hiçbir değişiklik kalıcı
// olmamış gibi sayaç geri alınır.
type fakeTxRunner struct {
	invoiceRepo *fakeInvoiceRepo
	companyRepo *fakeCompanyRepo
}

func (r *fakeTxRunner) RunInvoicing(ctx context.Context, fn func(
	invoiceRepo repository.InvoiceRepository,
	companyRepo repository.CompanyRepository,
) error) error {
	seqBefore := r.companyRepo.company.NextSequence
	if err := fn(r.invoiceRepo, r.companyRepo); err != nil {
		r.companyRepo.company.NextSequence = seqBefore
		return err
	}
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Kurulum yardımcıları
// ──────────────────────────────────────────────────────────────────────────────

type fixture struct {
	uc          *appbilling.InvoiceUseCase
	invoices    *fakeInvoiceRepo
	customers   *fakeCustomerRepo
	companyRepo *fakeCompanyRepo
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	invoices := newFakeInvoiceRepo()
	customers := &fakeCustomerRepo{items: map[string]entity.Customer{
		"cust-1": {
			ID:        "cust-1",
			Kind:      entity.CustomerKindCorporate,
			Name:      "Örnek Ticaret A.Ş.",
			TaxID:     "1234567890",
			TaxOffice: "Kadıköy",
			Address:   "Bağdat Cad. No:1, İstanbul",
		},
	}}
	companyRepo := &fakeCompanyRepo{company: &entity.Company{
		ID:             "comp-1",
		Name:           "Deneme Yazılım Ltd. Şti.",
		VKN:            "1234567890",
		TaxOffice:      "Beşiktaş",
		Address:        "Levent, İstanbul",
		InvoiceSeries:  "FTR",
		NextSequence:   1,
		CurrencyCode:   "TRY",
		DefaultTaxRate: decimal.NewFromInt(20),
	}}
	uc := appbilling.NewInvoiceUseCase(invoices, customers, companyRepo,
		&fakeTxRunner{invoiceRepo: invoices, companyRepo: companyRepo})
	return &fixture{uc: uc, invoices: invoices, customers: customers, companyRepo: companyRepo}
}

func draftRequest() dto.SaveInvoiceRequest {
	return dto.SaveInvoiceRequest{
		CustomerID: "cust-1",
		Date:       "2026-05-10",
		Lines: []dto.InvoiceLineInput{
			{
				Name:      "Danışmanlık",
				Quantity:  decimal.NewFromInt(2),
				Unit:      entity.UnitHour,
				UnitPrice: decimal.NewFromInt(500),
				TaxRate:   decimal.NewFromInt(20),
			},
		},
		DiscountPercent: decimal.Zero,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Preview
// ──────────────────────────────────────────────────────────────────────────────

func TestPreview_HesaplarAmaKaydetmez(t *testing.T) {
	f := newFixture(t)

	got := f.uc.Preview(dto.PreviewInvoiceRequest{
		Lines: []dto.InvoiceLineInput{
			{Name: "X", Quantity: decimal.NewFromInt(2), UnitPrice: decimal.NewFromInt(500), TaxRate: decimal.NewFromInt(20)},
		},
		DiscountPercent: decimal.NewFromInt(10),
	})

	assert.True(t, got.Totals.Subtotal.Equal(decimal.NewFromInt(900)))
	assert.True(t, got.Totals.TaxTotal.Equal(decimal.NewFromInt(200)))
	assert.True(t, got.Totals.GrandTotal.Equal(decimal.NewFromInt(1100)))
	assert.Equal(t, "₺1.100,00", got.Totals.GrandTotalFormatted)
	assert.Empty(t, f.invoices.items, "preview hiçbir şey kaydetmemeli")
}

// Belge iskontosu çağıran tarafta [0,100] aralığına sıkıştırılır.
func TestPreview_IskontoSiniraCekilir(t *testing.T) {
	f := newFixture(t)

	got := f.uc.Preview(dto.PreviewInvoiceRequest{
		Lines: []dto.InvoiceLineInput{
			{Name: "X", Quantity: decimal.NewFromInt(1), UnitPrice: decimal.NewFromInt(100), TaxRate: decimal.Zero},
		},
		DiscountPercent: decimal.NewFromInt(150),
	})

	assert.True(t, got.Totals.Subtotal.IsZero(), "iskonto %%100'e sıkıştırılmalı: %s", got.Totals.Subtotal)
}

// ──────────────────────────────────────────────────────────────────────────────
// Taslak kaydı ve kopya semantiği
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateDraft_AliciKopyalanirReferansTutulmaz(t *testing.T) {
	f := newFixture(t)

	resp, err := f.uc.CreateDraft(context.Background(), draftRequest())
	require.NoError(t, err)
	assert.Equal(t, "Örnek Ticaret A.Ş.", resp.Buyer.Name)

	// Katalogdaki müşteri sonradan değişirse fatura etkilenmez.
	c := f.customers.items["cust-1"]
	c.Name = "Yeni Unvan A.Ş."
	f.customers.items["cust-1"] = c

	reloaded, err := f.uc.GetByID(context.Background(), resp.ID)
	require.NoError(t, err)
	assert.Equal(t, "Örnek Ticaret A.Ş.", reloaded.Buyer.Name,
		"fatura kayıt anındaki kopyayı taşımalı")
}

func TestCreateDraft_ToplamlarKayittanOnceHesaplanir(t *testing.T) {
	f := newFixture(t)

	resp, err := f.uc.CreateDraft(context.Background(), draftRequest())
	require.NoError(t, err)

	assert.Equal(t, entity.InvoiceStatusDraft, resp.Status)
	assert.Empty(t, resp.Number, "taslakta numara atanmaz")
	assert.True(t, resp.Totals.GrandTotal.Equal(decimal.NewFromInt(1200)))
	require.Len(t, resp.Lines, 1)
	assert.True(t, resp.Lines[0].Net.Equal(decimal.NewFromInt(1000)))
}

func TestCreateDraft_MusteriYoksaNotFound(t *testing.T) {
	f := newFixture(t)

	in := draftRequest()
	in.CustomerID = "yok"
	_, err := f.uc.CreateDraft(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Kesinleştirme
// ──────────────────────────────────────────────────────────────────────────────

func TestFinalize_NumaraAtarVeSayacBirArtar(t *testing.T) {
	f := newFixture(t)

	resp, err := f.uc.CreateDraft(context.Background(), draftRequest())
	require.NoError(t, err)

	final, err := f.uc.Finalize(context.Background(), resp.ID)
	require.NoError(t, err)

	assert.Equal(t, entity.InvoiceStatusFinalized, final.Status)
	assert.Equal(t, "FTR2026-000001", final.Number, "numara <seri><yıl>-<6 hane> biçiminde")
	assert.Equal(t, int64(2), f.companyRepo.company.NextSequence, "sayaç tam bir kez artmalı")
}

func TestFinalize_IkinciKesinlestirmeCakisma(t *testing.T) {
	f := newFixture(t)

	resp, err := f.uc.CreateDraft(context.Background(), draftRequest())
	require.NoError(t, err)

	_, err = f.uc.Finalize(context.Background(), resp.ID)
	require.NoError(t, err)

	_, err = f.uc.Finalize(context.Background(), resp.ID)
	assert.ErrorIs(t, err, domain.ErrConflict, "kesinleşmiş fatura yeniden kesinleştirilemez")
	assert.Equal(t, int64(2), f.companyRepo.company.NextSequence, "sayaç ikinci kez artmamalı")
}

// Geçersiz kayıt denemesi: boş alıcı adı. Fatura kataloğu değişmeden kalır,
// hata listesi boş değildir ve firma sayacı artmaz.
func TestFinalize_DogrulamaHatasindaDurumDegismez(t *testing.T) {
	f := newFixture(t)

	// Alıcı adını katalogda boşalt, taslağı yeniden kaydet.
	c := f.customers.items["cust-1"]
	c.Name = ""
	f.customers.items["cust-1"] = c

	resp, err := f.uc.CreateDraft(context.Background(), draftRequest())
	require.NoError(t, err)

	_, err = f.uc.Finalize(context.Background(), resp.ID)
	require.Error(t, err)

	msgs, ok := domain.AsValidationError(err)
	require.True(t, ok, "hata doğrulama listesi taşımalı: %v", err)
	assert.Contains(t, msgs, "alıcı adı zorunlu")

	stored, err := f.uc.GetByID(context.Background(), resp.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.InvoiceStatusDraft, stored.Status, "durum değişmemeli")
	assert.Empty(t, stored.Number, "numara atanmamalı")
	assert.Equal(t, int64(1), f.companyRepo.company.NextSequence, "sayaç tüketilmemeli")
}

func TestFinalize_BosSatirListesiReddedilir(t *testing.T) {
	f := newFixture(t)

	in := draftRequest()
	in.Lines = nil
	resp, err := f.uc.CreateDraft(context.Background(), in)
	require.NoError(t, err, "boş taslak kaydedilebilir")

	_, err = f.uc.Finalize(context.Background(), resp.ID)
	msgs, ok := domain.AsValidationError(err)
	require.True(t, ok)
	assert.Contains(t, msgs, "fatura en az bir satır içermeli")
}

// ──────────────────────────────────────────────────────────────────────────────
// Kesinleşmiş faturanın değişmezliği
// ──────────────────────────────────────────────────────────────────────────────

func TestUpdateDraft_KesinlesmisFaturaDuzenlenemez(t *testing.T) {
	f := newFixture(t)

	resp, err := f.uc.CreateDraft(context.Background(), draftRequest())
	require.NoError(t, err)
	_, err = f.uc.Finalize(context.Background(), resp.ID)
	require.NoError(t, err)

	_, err = f.uc.UpdateDraft(context.Background(), resp.ID, draftRequest())
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestDelete_KesinlesmisFaturaSilinemez(t *testing.T) {
	f := newFixture(t)

	resp, err := f.uc.CreateDraft(context.Background(), draftRequest())
	require.NoError(t, err)
	_, err = f.uc.Finalize(context.Background(), resp.ID)
	require.NoError(t, err)

	err = f.uc.Delete(context.Background(), resp.ID)
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestFinalize_SaticiKopyasiKesinlestirmeAnindaDondurulur(t *testing.T) {
	f := newFixture(t)

	resp, err := f.uc.CreateDraft(context.Background(), draftRequest())
	require.NoError(t, err)

	final, err := f.uc.Finalize(context.Background(), resp.ID)
	require.NoError(t, err)
	assert.Equal(t, "Deneme Yazılım Ltd. Şti.", final.Seller.Name)

	// Firma profili sonradan değişirse kesinleşmiş fatura etkilenmez.
	f.companyRepo.company.Name = "Başka Unvan Ltd."
	reloaded, err := f.uc.GetByID(context.Background(), resp.ID)
	require.NoError(t, err)
	assert.Equal(t, "Deneme Yazılım Ltd. Şti.", reloaded.Seller.Name)
}
