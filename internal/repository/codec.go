package repository

import (
	"github.com/maheshrc27/marketing-hub/internal/models"
	"github.com/maheshrc27/marketing-hub/internal/store"
)

const (
	RecordUserProfile    = "UserProfile"
	RecordBrand          = "Brand"
	RecordCampaignPlan   = "CampaignPlan"
	RecordCalendarItem   = "ContentCalendarItem"
	RecordScheduledPost  = "ScheduledPost"
	RecordSocialAccount  = "ConnectedSocialAccount"
	RecordTemplate       = "Template"
	RecordAffiliateTool  = "AffiliateTool"
	RecordAffiliateClick = "AffiliateClick"
	RecordBooking        = "Booking"
	RecordMediaAsset     = "MediaAsset"
	RecordPostingHistory = "PostingHistory"
	RecordSubscription   = "Subscription"
)

func profileToRecord(p *models.UserProfile) store.Record {
	rec := store.NewRecord(RecordUserProfile, p.UserID)
	rec.Set("userId", p.UserID)
	rec.Set("name", p.Name)
	rec.Set("email", p.Email)
	rec.Set("businessName", p.BusinessName)
	rec.Set("businessType", p.BusinessType)
	rec.Set("plan", string(p.Plan))
	rec.Set("createdAt", p.CreatedAt)
	rec.Set("avatarURL", p.AvatarURL)
	return rec
}

func profileFromRecord(rec store.Record) (*models.UserProfile, error) {
	d := store.NewDecoder(rec)
	p := &models.UserProfile{
		UserID:       d.String("userId"),
		Name:         d.OptString("name"),
		Email:        d.OptString("email"),
		BusinessName: d.OptString("businessName"),
		BusinessType: d.OptString("businessType"),
		CreatedAt:    d.Time("createdAt"),
		AvatarURL:    d.OptString("avatarURL"),
	}
	p.Plan, _ = models.ParseTier(d.StringOr("plan", string(models.TierFree)))
	if err := d.Err(); err != nil {
		return nil, err
	}
	return p, nil
}

func brandToRecord(b *models.Brand) store.Record {
	rec := store.NewRecord(RecordBrand, b.ID)
	rec.Set("userId", b.UserID)
	rec.Set("name", b.Name)
	rec.Set("industry", b.Industry)
	rec.Set("colorHex", b.ColorHex)
	return rec
}

func brandFromRecord(rec store.Record) (*models.Brand, error) {
	d := store.NewDecoder(rec)
	b := &models.Brand{
		ID:       rec.ID,
		UserID:   d.String("userId"),
		Name:     d.String("name"),
		Industry: d.String("industry"),
		ColorHex: d.String("colorHex"),
	}
	if err := d.Err(); err != nil {
		return nil, err
	}
	return b, nil
}

func campaignToRecord(c *models.CampaignPlan) store.Record {
	rec := store.NewRecord(RecordCampaignPlan, c.ID)
	rec.Set("userId", c.UserID)
	rec.Set("brandId", c.BrandID)
	rec.Set("platform", c.Platform)
	rec.Set("budget", c.Budget)
	rec.Set("goal", c.Goal)
	rec.Set("outlineDetails", c.OutlineDetails)
	rec.Set("createdAt", c.CreatedAt)
	return rec
}

func campaignFromRecord(rec store.Record) (*models.CampaignPlan, error) {
	d := store.NewDecoder(rec)
	c := &models.CampaignPlan{
		ID:             rec.ID,
		UserID:         d.String("userId"),
		BrandID:        d.OptString("brandId"),
		Platform:       d.String("platform"),
		Budget:         d.FloatOr("budget", 0),
		Goal:           d.String("goal"),
		OutlineDetails: d.String("outlineDetails"),
		CreatedAt:      d.Time("createdAt"),
	}
	if err := d.Err(); err != nil {
		return nil, err
	}
	return c, nil
}

func calendarItemToRecord(i *models.ContentCalendarItem) store.Record {
	rec := store.NewRecord(RecordCalendarItem, i.ID)
	rec.Set("userId", i.UserID)
	rec.Set("brandId", i.BrandID)
	rec.Set("date", i.Date)
	rec.Set("platform", i.Platform)
	rec.Set("title", i.Title)
	rec.Set("notes", i.Notes)
	return rec
}

func calendarItemFromRecord(rec store.Record) (*models.ContentCalendarItem, error) {
	d := store.NewDecoder(rec)
	i := &models.ContentCalendarItem{
		ID:       rec.ID,
		UserID:   d.String("userId"),
		BrandID:  d.OptString("brandId"),
		Date:     d.Time("date"),
		Platform: d.String("platform"),
		Title:    d.String("title"),
		Notes:    d.String("notes"),
	}
	if err := d.Err(); err != nil {
		return nil, err
	}
	return i, nil
}

func postToRecord(p *models.ScheduledPost) store.Record {
	rec := store.NewRecord(RecordScheduledPost, p.ID)
	rec.Set("userId", p.UserID)
	rec.Set("brandId", p.BrandID)
	rec.Set("calendarItemId", p.CalendarItemID)
	rec.Set("platform", p.Platform)
	rec.Set("accountId", p.AccountID)
	rec.Set("content", p.Content)
	rec.Set("scheduledDate", p.ScheduledDate)
	rec.Set("status", string(p.Status))
	mediaURLs := p.MediaURLs
	if mediaURLs == nil {
		mediaURLs = []string{}
	}
	rec.Set("mediaURLs", mediaURLs)
	rec.Set("hashtags", p.Hashtags)
	rec.Set("linkURL", p.LinkURL)
	rec.Set("postedAt", p.PostedAt)
	rec.Set("errorMessage", p.ErrorMessage)
	rec.Set("createdAt", p.CreatedAt)
	rec.Set("leaseExpiresAt", p.LeaseExpiresAt)
	return rec
}

func postFromRecord(rec store.Record) (*models.ScheduledPost, error) {
	d := store.NewDecoder(rec)
	p := &models.ScheduledPost{
		ID:             rec.ID,
		UserID:         d.String("userId"),
		BrandID:        d.OptString("brandId"),
		CalendarItemID: d.OptString("calendarItemId"),
		Platform:       d.String("platform"),
		AccountID:      d.OptString("accountId"),
		Content:        d.String("content"),
		ScheduledDate:  d.Time("scheduledDate"),
		MediaURLs:      d.Strings("mediaURLs"),
		Hashtags:       d.OptString("hashtags"),
		LinkURL:        d.OptString("linkURL"),
		PostedAt:       d.OptTime("postedAt"),
		ErrorMessage:   d.OptString("errorMessage"),
		CreatedAt:      d.Time("createdAt"),
		LeaseExpiresAt: d.OptTime("leaseExpiresAt"),
	}
	status, ok := models.ParsePostStatus(d.StringOr("status", ""))
	if !ok {
		status = models.PostStatusScheduled
	}
	p.Status = status
	if p.MediaURLs == nil {
		p.MediaURLs = []string{}
	}
	if err := d.Err(); err != nil {
		return nil, err
	}
	return p, nil
}

func accountToRecord(a *models.ConnectedSocialAccount) store.Record {
	rec := store.NewRecord(RecordSocialAccount, a.ID)
	rec.Set("userId", a.UserID)
	rec.Set("platform", a.Platform)
	rec.Set("accountName", a.AccountName)
	rec.Set("accountId", a.AccountID)
	rec.Set("isActive", a.IsActive)
	rec.Set("connectedAt", a.ConnectedAt)
	rec.Set("accessToken", a.AccessToken)
	rec.Set("refreshToken", a.RefreshToken)
	return rec
}

func accountFromRecord(rec store.Record) (*models.ConnectedSocialAccount, error) {
	d := store.NewDecoder(rec)
	a := &models.ConnectedSocialAccount{
		ID:           rec.ID,
		UserID:       d.String("userId"),
		Platform:     d.String("platform"),
		AccountName:  d.String("accountName"),
		AccountID:    d.String("accountId"),
		IsActive:     d.BoolOr("isActive", false),
		ConnectedAt:  d.Time("connectedAt"),
		AccessToken:  d.OptString("accessToken"),
		RefreshToken: d.OptString("refreshToken"),
	}
	if err := d.Err(); err != nil {
		return nil, err
	}
	return a, nil
}

func templateToRecord(t *models.TemplateItem) store.Record {
	rec := store.NewRecord(RecordTemplate, t.ID)
	rec.Set("name", t.Name)
	rec.Set("description", t.Description)
	rec.Set("isPremium", t.IsPremium)
	rec.Set("isAgencyOnly", t.IsAgencyOnly)
	rec.Set("assetFileName", t.AssetFileName)
	return rec
}

func templateFromRecord(rec store.Record) (*models.TemplateItem, error) {
	d := store.NewDecoder(rec)
	t := &models.TemplateItem{
		ID:            rec.ID,
		Name:          d.String("name"),
		Description:   d.String("description"),
		IsPremium:     d.Bool("isPremium"),
		IsAgencyOnly:  d.Bool("isAgencyOnly"),
		AssetFileName: d.OptString("assetFileName"),
	}
	if err := d.Err(); err != nil {
		return nil, err
	}
	return t, nil
}

func toolToRecord(t *models.AffiliateTool) store.Record {
	rec := store.NewRecord(RecordAffiliateTool, t.ID)
	rec.Set("name", t.Name)
	rec.Set("shortDescription", t.ShortDescription)
	rec.Set("url", t.URL)
	rec.Set("isProRecommended", t.IsProRecommended)
	return rec
}

func toolFromRecord(rec store.Record) (*models.AffiliateTool, error) {
	d := store.NewDecoder(rec)
	t := &models.AffiliateTool{
		ID:               rec.ID,
		Name:             d.String("name"),
		ShortDescription: d.String("shortDescription"),
		URL:              d.String("url"),
		IsProRecommended: d.Bool("isProRecommended"),
	}
	if err := d.Err(); err != nil {
		return nil, err
	}
	return t, nil
}

func clickToRecord(c *models.AffiliateClick) store.Record {
	rec := store.NewRecord(RecordAffiliateClick, c.ID)
	rec.Set("userId", c.UserID)
	rec.Set("toolId", c.ToolID)
	rec.Set("timestamp", c.Timestamp)
	return rec
}

func clickFromRecord(rec store.Record) (*models.AffiliateClick, error) {
	d := store.NewDecoder(rec)
	c := &models.AffiliateClick{
		ID:        rec.ID,
		UserID:    d.String("userId"),
		ToolID:    d.String("toolId"),
		Timestamp: d.Time("timestamp"),
	}
	if err := d.Err(); err != nil {
		return nil, err
	}
	return c, nil
}

func bookingToRecord(b *models.Booking) store.Record {
	rec := store.NewRecord(RecordBooking, b.ID)
	rec.Set("userId", b.UserID)
	rec.Set("serviceType", b.ServiceType)
	rec.Set("requestedTime", b.RequestedTime)
	rec.Set("notes", b.Notes)
	rec.Set("createdAt", b.CreatedAt)
	return rec
}

func bookingFromRecord(rec store.Record) (*models.Booking, error) {
	d := store.NewDecoder(rec)
	b := &models.Booking{
		ID:            rec.ID,
		UserID:        d.String("userId"),
		ServiceType:   d.String("serviceType"),
		RequestedTime: d.Time("requestedTime"),
		Notes:         d.String("notes"),
		CreatedAt:     d.Time("createdAt"),
	}
	if err := d.Err(); err != nil {
		return nil, err
	}
	return b, nil
}

func assetToRecord(a *models.MediaAsset) store.Record {
	rec := store.NewRecord(RecordMediaAsset, a.ID)
	rec.Set("userId", a.UserID)
	rec.Set("fileName", a.FileName)
	rec.Set("fileType", a.FileType)
	rec.Set("fileSize", a.FileSize)
	rec.Set("fileURL", a.FileURL)
	rec.Set("createdAt", a.CreatedAt)
	return rec
}

func assetFromRecord(rec store.Record) (*models.MediaAsset, error) {
	d := store.NewDecoder(rec)
	a := &models.MediaAsset{
		ID:        rec.ID,
		UserID:    d.String("userId"),
		FileName:  d.String("fileName"),
		FileType:  d.String("fileType"),
		FileSize:  int64(d.FloatOr("fileSize", 0)),
		FileURL:   d.String("fileURL"),
		CreatedAt: d.Time("createdAt"),
	}
	if err := d.Err(); err != nil {
		return nil, err
	}
	return a, nil
}

func historyToRecord(h *models.PostingHistory) store.Record {
	rec := store.NewRecord(RecordPostingHistory, h.ID)
	rec.Set("userId", h.UserID)
	rec.Set("postId", h.PostID)
	rec.Set("accountId", h.AccountID)
	rec.Set("platformPostId", h.PlatformPostID)
	rec.Set("errorMessage", h.ErrorMessage)
	rec.Set("createdAt", h.CreatedAt)
	return rec
}

func historyFromRecord(rec store.Record) (*models.PostingHistory, error) {
	d := store.NewDecoder(rec)
	h := &models.PostingHistory{
		ID:             rec.ID,
		UserID:         d.String("userId"),
		PostID:         d.String("postId"),
		AccountID:      d.StringOr("accountId", ""),
		PlatformPostID: d.StringOr("platformPostId", ""),
		ErrorMessage:   d.StringOr("errorMessage", ""),
		CreatedAt:      d.Time("createdAt"),
	}
	if err := d.Err(); err != nil {
		return nil, err
	}
	return h, nil
}

func subscriptionToRecord(s *models.Subscription) store.Record {
	rec := store.NewRecord(RecordSubscription, s.ID)
	rec.Set("userId", s.UserID)
	rec.Set("productId", s.ProductID)
	rec.Set("transactionId", s.TransactionID)
	rec.Set("status", s.Status)
	rec.Set("purchasedAt", s.PurchasedAt)
	rec.Set("expiresAt", s.ExpiresAt)
	return rec
}

func subscriptionFromRecord(rec store.Record) (*models.Subscription, error) {
	d := store.NewDecoder(rec)
	s := &models.Subscription{
		ID:            rec.ID,
		UserID:        d.String("userId"),
		ProductID:     d.String("productId"),
		TransactionID: d.String("transactionId"),
		Status:        d.StringOr("status", models.SubscriptionActive),
		PurchasedAt:   d.Time("purchasedAt"),
		ExpiresAt:     d.OptTime("expiresAt"),
	}
	if err := d.Err(); err != nil {
		return nil, err
	}
	return s, nil
}
