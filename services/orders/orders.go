package orders

import (
	"context"
	"fmt"
	"log"
	"time"

	"tagsweep/clients"
	"tagsweep/core"
	"tagsweep/models"
)

const (
	metafieldNamespace = "custom"
	needsFollowUpKey   = "needs_follow_up"
	followUpNotesKey   = "follow_up_notes"

	// Value written to needs_follow_up when clearing
	clearedFlagValue = "false"

	// FlagNotSet is reported when the order never had the follow-up metafield
	FlagNotSet = "(not set)"
)

// RemovedTags is the fixed pair of tags stripped from cleared orders
var RemovedTags = []string{"NeedPhotoNoShip", "NeedPhoto"}

// OrdersService runs the follow-up clearing sequence against Shopify
type OrdersService struct {
	shopifyClient clients.ShopifyClient
	storeDomain   string
}

// NewOrdersService creates a new instance of OrdersService
func NewOrdersService(shopifyClient clients.ShopifyClient, storeDomain string) *OrdersService {
	return &OrdersService{
		shopifyClient: shopifyClient,
		storeDomain:   storeDomain,
	}
}

// ClearFollowUp executes the clearing sequence for one order, strictly in
// order: lookup, snapshot, flag clear, notes delete, tag removal, note audit.
// The first failing step aborts the rest; already-applied steps are not
// rolled back. The snapshot happens before any write so the result carries
// a before/after audit trail.
func (s *OrdersService) ClearFollowUp(ctx context.Context, orderName string) (*models.ClearResult, error) {
	log.Printf("📋 Starting follow-up clear for order %s", orderName)

	// Step 1: lookup by exact display name, any status
	maybeOrder, err := s.shopifyClient.LookupOrderByName(ctx, orderName)
	if err != nil {
		return nil, core.NewStepError("order lookup", err)
	}
	if !maybeOrder.IsPresent() {
		return nil, fmt.Errorf("%w: %s", core.ErrOrderNotFound, orderName)
	}
	order := maybeOrder.MustGet()

	// Step 2: snapshot current follow-up state before touching anything
	flagBefore := FlagNotSet
	if order.NeedsFollowUp != nil {
		flagBefore = order.NeedsFollowUp.Value
	}
	notesBefore := ""
	hadNotes := order.FollowUpNotes != nil
	if hadNotes {
		notesBefore = order.FollowUpNotes.Value
	}

	// Step 3: clear the needs_follow_up flag
	if err := s.shopifyClient.SetMetafield(ctx, order.ID, metafieldNamespace, needsFollowUpKey, clearedFlagValue); err != nil {
		return nil, core.NewStepError("flag clear", err)
	}
	log.Printf("✅ Cleared %s.%s on %s", metafieldNamespace, needsFollowUpKey, order.Name)

	// Step 4: delete the follow_up_notes metafield entirely. An order that
	// never had it has nothing to delete.
	if hadNotes {
		if err := s.shopifyClient.DeleteMetafield(ctx, order.FollowUpNotes.ID); err != nil {
			return nil, core.NewStepError("notes delete", err)
		}
		log.Printf("✅ Deleted %s.%s on %s", metafieldNamespace, followUpNotesKey, order.Name)
	}

	// Step 5: remove the fixed tag pair
	if err := s.shopifyClient.RemoveTags(ctx, order.ID, RemovedTags); err != nil {
		return nil, core.NewStepError("tag removal", err)
	}
	log.Printf("✅ Removed tags %v from %s", RemovedTags, order.Name)

	// Step 6: prepend the audit line to the order note, preserving the
	// full existing note below it
	currentNote, err := s.shopifyClient.GetOrderNote(ctx, order.ID)
	if err != nil {
		return nil, core.NewStepError("note audit", err)
	}
	auditLine := fmt.Sprintf("%s: cleared NeedPhotoNoShip follow-up (needs_follow_up %s -> %s)",
		time.Now().UTC().Format("2006-01-02"), flagBefore, clearedFlagValue)
	if err := s.shopifyClient.UpdateOrderNote(ctx, order.ID, PrependAudit(auditLine, currentNote)); err != nil {
		return nil, core.NewStepError("note audit", err)
	}
	log.Printf("✅ Audit note prepended on %s", order.Name)

	return &models.ClearResult{
		OrderName:   order.Name,
		FlagBefore:  flagBefore,
		FlagAfter:   clearedFlagValue,
		NotesBefore: notesBefore,
		HadNotes:    hadNotes,
		TagsRemoved: RemovedTags,
		AdminURL:    fmt.Sprintf("https://%s/admin/orders/%s", s.storeDomain, order.LegacyResourceID),
	}, nil
}

// PrependAudit places the audit line above the existing note: the audit
// line, two blank lines, a separator, two blank lines, then the previous
// note verbatim
func PrependAudit(auditLine, existingNote string) string {
	return auditLine + "\n\n\n---\n\n\n" + existingNote
}
