package mapping

import (
	"github.com/caisse-pos/caisse_backend/internal/core/domain"
	"github.com/caisse-pos/caisse_backend/internal/models"
)

// ToModelVoucher converts a domain Voucher to a model Voucher
func ToModelVoucher(d domain.Voucher) models.Voucher {
	return models.Voucher{
		VoucherID:       d.VoucherID,
		ClientID:        d.ClientID,
		IssuingSaleID:   d.IssuingSaleID,
		RedeemingSaleID: d.RedeemingSaleID,
		Amount:          d.Amount,
		Redeemed:        d.Redeemed,
		Remarks:         d.Remarks,
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainVoucher converts a model Voucher to a domain Voucher
func ToDomainVoucher(m models.Voucher) domain.Voucher {
	return domain.Voucher{
		VoucherID:       m.VoucherID,
		ClientID:        m.ClientID,
		IssuingSaleID:   m.IssuingSaleID,
		RedeemingSaleID: m.RedeemingSaleID,
		Amount:          m.Amount,
		Redeemed:        m.Redeemed,
		Remarks:         m.Remarks,
		AuditFields:     ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainVoucherSlice converts a slice of model Vouchers to domain Vouchers
func ToDomainVoucherSlice(ms []models.Voucher) []domain.Voucher {
	ds := make([]domain.Voucher, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainVoucher(m)
	}
	return ds
}
