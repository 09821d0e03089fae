package dataset

// SeedRow is a curated, partially-specified error pattern. Derived fields
// (http_status, source_url, category, tags, ...) are filled by Normalize;
// severity uses the pipeline vocabulary and is mapped to the canonical one at
// build time.
type SeedRow struct {
	API                 APIName `validate:"required"`
	Resource            string
	Method              string
	ErrorType           string `validate:"required"`
	ErrorCode           string
	DeclineCode         string
	ErrorMessage        string `validate:"required"`
	SolutionTitle       string
	SolutionDescription string
	ReproduceInTestMode string
	ParamsImplicated    []string
	Severity            PipelineSeverity
	SourceURL           string
	Category            string
	Tags                []string
}

// StripeSeed is the curated Stripe exemplar set. Keep solutions paraphrased
// from Stripe docs. Order is significant: duplicates collapse to the first
// occurrence when the collection is deduplicated downstream.
var StripeSeed = []SeedRow{
	// 401, invalid API key: type-only, no canonical code on the public list
	{
		API:                 APIStripe,
		Resource:            "any",
		Method:              "POST",
		ErrorType:           TypeAuthentication,
		ErrorMessage:        "Invalid API key provided",
		SolutionTitle:       "Verify API key configuration",
		SolutionDescription: "Use the correct key (test vs live), ensure it's active, and not mixed across environments.",
		ReproduceInTestMode: "Set an invalid secret key (e.g., 'sk_test_invalid')",
		ParamsImplicated:    []string{"Authorization"},
		Severity:            PipelineBlocking,
	},
	// Parameter omissions/shape errors
	{
		API:                 APIStripe,
		Resource:            "payment_intent",
		Method:              "POST",
		ErrorType:           TypeInvalidRequest,
		ErrorCode:           "parameter_missing",
		ErrorMessage:        "Missing required parameter",
		SolutionTitle:       "Add required parameters",
		SolutionDescription: "Include all required fields for the endpoint, matching types and constraints.",
		ReproduceInTestMode: "Create PaymentIntent without 'amount'",
		ParamsImplicated:    []string{"amount", "currency"},
		Severity:            PipelineBlocking,
	},
	// 3DS / SCA
	{
		API:                 APIStripe,
		Resource:            "payment_intent",
		Method:              "POST",
		ErrorType:           TypeCard,
		ErrorCode:           "authentication_required",
		ErrorMessage:        "The payment requires authentication to proceed",
		SolutionTitle:       "Prompt 3D Secure",
		SolutionDescription: "Handle SCA: redirect/handle next_action for 3DS, or collect a new payment method.",
		ReproduceInTestMode: "Use 3DS test card 4000002500003155 and confirm off_session to trigger authentication.",
		ParamsImplicated:    []string{"payment_method", "confirmation_method"},
		Severity:            PipelineBlocking,
	},
	// Generic decline
	{
		API:                 APIStripe,
		Resource:            "payment_intent",
		Method:              "POST",
		ErrorType:           TypeCard,
		ErrorCode:           "card_declined",
		DeclineCode:         "generic_decline",
		ErrorMessage:        "The card was declined",
		SolutionTitle:       "Ask for a different card",
		SolutionDescription: "Prompt the customer to try another card or contact their bank.",
		ReproduceInTestMode: "Use test card 4000000000000002",
		ParamsImplicated:    []string{"payment_method"},
		Severity:            PipelineBlocking,
	},
	// Insufficient funds
	{
		API:                 APIStripe,
		Resource:            "payment_intent",
		Method:              "POST",
		ErrorType:           TypeCard,
		ErrorCode:           "card_declined",
		DeclineCode:         "insufficient_funds",
		ErrorMessage:        "The customer's account has insufficient funds",
		SolutionTitle:       "Try a different payment method",
		SolutionDescription: "Ask the customer to add funds or use another card/payment method.",
		ReproduceInTestMode: "Use test card 4000000000009995",
		ParamsImplicated:    []string{"amount", "payment_method"},
		Severity:            PipelineBlocking,
	},
	// Expired card
	{
		API:                 APIStripe,
		Resource:            "payment_method",
		Method:              "POST",
		ErrorType:           TypeCard,
		ErrorCode:           "card_declined",
		DeclineCode:         "expired_card",
		ErrorMessage:        "The card has expired",
		SolutionTitle:       "Collect an updated card",
		SolutionDescription: "Ask the customer for a card with a valid expiry date.",
		ReproduceInTestMode: "Use test card 4000000000000069",
		ParamsImplicated:    []string{"exp_month", "exp_year"},
		Severity:            PipelineBlocking,
	},
	// Amount bounds
	{
		API:                 APIStripe,
		Resource:            "payment_intent",
		Method:              "POST",
		ErrorType:           TypeInvalidRequest,
		ErrorCode:           "amount_too_small",
		ErrorMessage:        "The specified amount is less than the minimum allowed",
		SolutionTitle:       "Use minimum amount",
		SolutionDescription: "Increase the amount to meet the minimum (varies by currency/payment method).",
		ReproduceInTestMode: "Create PaymentIntent with amount below the minimum (e.g., 10 cents USD).",
		ParamsImplicated:    []string{"amount"},
		Severity:            PipelineBlocking,
	},
	{
		API:                 APIStripe,
		Resource:            "payment_intent",
		Method:              "POST",
		ErrorType:           TypeInvalidRequest,
		ErrorCode:           "amount_too_large",
		ErrorMessage:        "The specified amount exceeds the maximum allowed",
		SolutionTitle:       "Use smaller amount",
		SolutionDescription: "Reduce the amount within allowed limits (varies by payment method).",
		ReproduceInTestMode: "Create PaymentIntent with an extremely large amount.",
		ParamsImplicated:    []string{"amount"},
		Severity:            PipelineBlocking,
	},
	// Rate limit: type-only
	{
		API:                 APIStripe,
		Resource:            "any",
		Method:              "POST",
		ErrorType:           TypeRateLimit,
		ErrorMessage:        "Too many requests hit the API",
		SolutionTitle:       "Backoff and retry",
		SolutionDescription: "Throttle requests and implement exponential backoff with jitter.",
		ReproduceInTestMode: "Send a burst of rapid requests to the same endpoint.",
		Severity:            PipelineTransient,
	},
	{
		API:                 APIStripe,
		Resource:            "customer",
		Method:              "POST",
		ErrorType:           TypeInvalidRequest,
		ErrorCode:           "email_invalid",
		ErrorMessage:        "The email address is invalid",
		SolutionTitle:       "Validate email",
		SolutionDescription: "Ensure the email is properly formatted and allowed.",
		ReproduceInTestMode: "Create Customer with email 'invalid-email'",
		ParamsImplicated:    []string{"email"},
		Severity:            PipelineBlocking,
	},
	{
		API:                 APIStripe,
		Resource:            "invoice",
		Method:              "POST",
		ErrorType:           TypeInvalidRequest,
		ErrorCode:           "invoice_no_customer_line_items",
		ErrorMessage:        "No pending invoice items for that customer",
		SolutionTitle:       "Create invoice items",
		SolutionDescription: "Add pending invoice items or ensure the right customer is selected.",
		ReproduceInTestMode: "Attempt to create/finalize invoice without any line items.",
		ParamsImplicated:    []string{"customer", "line_items"},
		Severity:            PipelineBlocking,
	},
	{
		API:                 APIStripe,
		Resource:            "transfer",
		Method:              "POST",
		ErrorType:           TypeInvalidRequest,
		ErrorCode:           "balance_insufficient",
		ErrorMessage:        "Insufficient available balance",
		SolutionTitle:       "Adjust transfer amount",
		SolutionDescription: "Use an amount at or below the available balance, or wait for funds to settle.",
		ReproduceInTestMode: "Create a transfer over available balance to a connected account.",
		ParamsImplicated:    []string{"amount", "destination"},
		Severity:            PipelineBlocking,
	},
	// Second invalid-key row kept on purpose; collapses into the first by dedupe.
	{
		API:                 APIStripe,
		Resource:            "any",
		Method:              "POST",
		ErrorType:           TypeAuthentication,
		ErrorMessage:        "Invalid API key provided",
		SolutionTitle:       "Verify API key configuration",
		SolutionDescription: "Use the correct key (test vs live), ensure it's active, and not mixed across environments.",
		ReproduceInTestMode: "Set an invalid secret key (e.g., 'sk_test_invalid')",
		ParamsImplicated:    []string{"Authorization"},
		Severity:            PipelineBlocking,
	},
	{
		API:                 APIStripe,
		Resource:            "payment_method",
		Method:              "POST",
		ErrorType:           TypeInvalidRequest,
		ErrorCode:           "postal_code_invalid",
		ErrorMessage:        "The postal code provided was incorrect.",
		SolutionTitle:       "Validate postal code",
		SolutionDescription: "Ensure the postal/ZIP code matches the card's billing address format.",
		ParamsImplicated:    []string{"billing_details[address][postal_code]"},
		Severity:            PipelineBlocking,
	},
	{
		API:                 APIStripe,
		Resource:            "tax",
		Method:              "POST",
		ErrorType:           TypeInvalidRequest,
		ErrorCode:           "stripe_tax_inactive",
		ErrorMessage:        "Stripe Tax hasn't been activated on your account.",
		SolutionTitle:       "Activate Stripe Tax",
		SolutionDescription: "Enable Stripe Tax in Dashboard settings before creating tax calculations.",
		Severity:            PipelineConfig,
	},
	{
		API:                 APIStripe,
		Resource:            "bank_account",
		Method:              "POST",
		ErrorType:           TypeCard,
		ErrorCode:           "account_closed",
		ErrorMessage:        "The customer's bank account has been closed.",
		SolutionTitle:       "Collect different bank account",
		SolutionDescription: "Ask the customer to provide a different, active bank account.",
		Severity:            PipelineBlocking,
	},
	{
		API:                 APIStripe,
		Resource:            "account",
		Method:              "POST",
		ErrorType:           TypeInvalidRequest,
		ErrorCode:           "account_country_invalid_address",
		ErrorMessage:        "Business address country doesn't match the account country.",
		SolutionTitle:       "Fix address country",
		SolutionDescription: "Update the business address to match the account country.",
		ParamsImplicated:    []string{"business_profile[address][country]"},
		Severity:            PipelineConfig,
	},
	{
		API:                 APIStripe,
		Resource:            "account",
		Method:              "POST",
		ErrorType:           TypeInvalidRequest,
		ErrorCode:           "account_invalid",
		ErrorMessage:        "Invalid account ID provided in Stripe-Account header.",
		SolutionTitle:       "Verify account ID",
		SolutionDescription: "Use a valid connected account ID when using the Stripe-Account header.",
		ParamsImplicated:    []string{"Stripe-Account"},
		Severity:            PipelineBlocking,
	},
	{
		API:                 APIStripe,
		Resource:            "bank_account",
		Method:              "POST",
		ErrorType:           TypeInvalidRequest,
		ErrorCode:           "account_number_invalid",
		ErrorMessage:        "Bank account number is invalid.",
		SolutionTitle:       "Validate account number",
		SolutionDescription: "Confirm format and digits per country requirements.",
		ParamsImplicated:    []string{"account_number", "country", "currency"},
		Severity:            PipelineBlocking,
	},
	{
		API:                 APIStripe,
		Resource:            "any",
		Method:              "POST",
		ErrorType:           TypeAuthentication,
		ErrorCode:           "api_key_expired",
		ErrorMessage:        "The API key provided has expired.",
		SolutionTitle:       "Rotate API keys",
		SolutionDescription: "Generate a new key in Dashboard and update your environment.",
		Severity:            PipelineBlocking,
	},
	{
		API:                 APIStripe,
		Resource:            "balance",
		Method:              "GET",
		ErrorType:           TypeInvalidRequest,
		ErrorCode:           "balance_invalid_parameter",
		ErrorMessage:        "Invalid parameter in balance method.",
		SolutionTitle:       "Fix parameter",
		SolutionDescription: "Use correct parameters for the balance API.",
		Severity:            PipelineBlocking,
	},
	{
		API:                 APIStripe,
		Resource:            "bank_account",
		Method:              "POST",
		ErrorType:           TypeInvalidRequest,
		ErrorCode:           "bank_account_declined",
		ErrorMessage:        "Bank account can't be used to charge (unverified/unsupported).",
		SolutionTitle:       "Verify or change bank account",
		SolutionDescription: "Complete microdeposit verification or use a supported account.",
		Severity:            PipelineBlocking,
	},
	{
		API:                 APIStripe,
		Resource:            "bank_account",
		Method:              "POST",
		ErrorType:           TypeInvalidRequest,
		ErrorCode:           "bank_account_unverified",
		ErrorMessage:        "Attempting to share an unverified bank account with a connected account.",
		SolutionTitle:       "Verify account first",
		SolutionDescription: "Complete bank account verification before sharing.",
		Severity:            PipelineConfig,
	},
	{
		API:                 APIStripe,
		Resource:            "charge",
		Method:              "POST",
		ErrorType:           TypeInvalidRequest,
		ErrorCode:           "capture_charge_authorization_expired",
		ErrorMessage:        "Authorization expired; charge can't be captured.",
		SolutionTitle:       "Create a new payment",
		SolutionDescription: "Re-create the payment since the authorization window has passed.",
		Severity:            PipelineBlocking,
	},
	{
		API:                 APIStripe,
		Resource:            "payment_intent",
		Method:              "POST",
		ErrorType:           TypeCard,
		ErrorCode:           "card_decline_rate_limit_exceeded",
		ErrorMessage:        "This card was declined too many times recently.",
		SolutionTitle:       "Wait or use different card",
		SolutionDescription: "Retry later (e.g., 24h) or ask customer to contact their bank/use another card.",
		Severity:            PipelineBlocking,
	},
	{
		API:                 APIStripe,
		Resource:            "charge",
		Method:              "POST",
		ErrorType:           TypeInvalidRequest,
		ErrorCode:           "charge_already_captured",
		ErrorMessage:        "Charge has already been captured.",
		SolutionTitle:       "Use uncaptured charge",
		SolutionDescription: "Only capture charges that are in an uncaptured state.",
		Severity:            PipelineBlocking,
	},
	{
		API:                 APIStripe,
		Resource:            "charge",
		Method:              "POST",
		ErrorType:           TypeInvalidRequest,
		ErrorCode:           "charge_already_refunded",
		ErrorMessage:        "Charge has already been refunded.",
		SolutionTitle:       "Don't refund again",
		SolutionDescription: "Use a different charge ID or avoid double refund.",
		Severity:            PipelineBlocking,
	},
	{
		API:                 APIStripe,
		Resource:            "charge",
		Method:              "POST",
		ErrorType:           TypeInvalidRequest,
		ErrorCode:           "charge_exceeds_source_limit",
		ErrorMessage:        "Charge exceeds rolling-window processing limit for this source type.",
		SolutionTitle:       "Retry later or raise limits",
		SolutionDescription: "Try again later or request higher processing limits from Stripe.",
		Severity:            PipelineTransient,
	},
	{
		API:                 APIStripe,
		Resource:            "account",
		Method:              "POST",
		ErrorType:           TypeInvalidRequest,
		ErrorCode:           "country_unsupported",
		ErrorMessage:        "Attempted to create a custom account in an unsupported country.",
		SolutionTitle:       "Restrict signup by country",
		SolutionDescription: "Allow only supported countries for Connect custom accounts.",
		Severity:            PipelineConfig,
	},
	{
		API:                 APIStripe,
		Resource:            "coupon",
		Method:              "POST",
		ErrorType:           TypeInvalidRequest,
		ErrorCode:           "coupon_expired",
		ErrorMessage:        "The coupon has expired.",
		SolutionTitle:       "Use valid coupon",
		SolutionDescription: "Create a new coupon or use an existing valid coupon.",
		Severity:            PipelineBlocking,
	},
	{
		API:                 APIStripe,
		Resource:            "subscription",
		Method:              "POST",
		ErrorType:           TypeInvalidRequest,
		ErrorCode:           "customer_max_subscriptions",
		ErrorMessage:        "The maximum number of subscriptions for a customer has been reached.",
		SolutionTitle:       "Review subscription policy",
		SolutionDescription: "Reduce active subscriptions or contact Stripe support.",
		Severity:            PipelineConfig,
	},
	{
		API:                 APIStripe,
		Resource:            "customer",
		Method:              "POST",
		ErrorType:           TypeInvalidRequest,
		ErrorCode:           "customer_tax_location_invalid",
		ErrorMessage:        "Customer address missing or invalid for tax.",
		SolutionTitle:       "Provide tax-valid address",
		SolutionDescription: "At minimum, set country (ISO) and postal_code; include state/province where required.",
		ParamsImplicated:    []string{"address[country]", "address[postal_code]"},
		Severity:            PipelineBlocking,
	},
	{
		API:                 APIStripe,
		Resource:            "idempotency",
		Method:              "POST",
		ErrorType:           TypeInvalidRequest,
		ErrorCode:           "idempotency_key_in_use",
		ErrorMessage:        "Idempotency key is currently being used in another request.",
		SolutionTitle:       "Avoid concurrent duplicates",
		SolutionDescription: "Don't send concurrent requests with the same idempotency key; wait or use a new key.",
		Severity:            PipelineTransient,
	},
	{
		API:                 APIStripe,
		Resource:            "payout",
		Method:              "POST",
		ErrorType:           TypeInvalidRequest,
		ErrorCode:           "instant_payouts_limit_exceeded",
		ErrorMessage:        "Daily processing limits for Instant Payouts reached.",
		SolutionTitle:       "Try later or request increase",
		SolutionDescription: "Wait until the next day or contact Stripe to raise limits.",
		Severity:            PipelineTransient,
	},
	// Duplicate insufficient_funds row kept on purpose (see dedupe).
	{
		API:                 APIStripe,
		Resource:            "payment_intent",
		Method:              "POST",
		ErrorType:           TypeCard,
		ErrorCode:           "card_declined",
		DeclineCode:         "insufficient_funds",
		ErrorMessage:        "The customer's account has insufficient funds to cover this payment.",
		SolutionTitle:       "Try a different payment method",
		SolutionDescription: "Ask the customer to add funds or use another card/payment method.",
		ReproduceInTestMode: "Use test card 4000000000009995",
		ParamsImplicated:    []string{"amount", "payment_method"},
		Severity:            PipelineBlocking,
	},
	{
		API:                 APIStripe,
		Resource:            "any",
		Method:              "POST",
		ErrorType:           TypeInvalidRequest,
		ErrorCode:           "invalid_characters",
		ErrorMessage:        "Field contains unsupported characters.",
		SolutionTitle:       "Remove unsupported characters",
		SolutionDescription: "Provide only allowed characters per field requirements.",
		Severity:            PipelineBlocking,
	},
	{
		API:                 APIStripe,
		Resource:            "invoice",
		Method:              "GET",
		ErrorType:           TypeInvalidRequest,
		ErrorCode:           "invoice_upcoming_none",
		ErrorMessage:        "No upcoming invoice to preview.",
		SolutionTitle:       "Ensure billable items",
		SolutionDescription: "Only customers with active subscriptions or pending items have previewable invoices.",
		Severity:            PipelineConfig,
	},
	{
		API:                 APIStripe,
		Resource:            "bank_account",
		Method:              "POST",
		ErrorType:           TypeInvalidRequest,
		ErrorCode:           "debit_not_authorized",
		ErrorMessage:        "Customer reported the debit as unauthorized.",
		SolutionTitle:       "Resolve authorization",
		SolutionDescription: "Work with the customer to authorize the debit or use a different payment method.",
		Severity:            PipelineBlocking,
	},
	{
		API:                 APIStripe,
		Resource:            "any",
		Method:              "POST",
		ErrorType:           TypeInvalidRequest,
		ErrorCode:           "parameter_invalid_empty",
		ErrorMessage:        "One or more required values weren't provided.",
		SolutionTitle:       "Provide required values",
		SolutionDescription: "Include all required parameters for the API call.",
		Severity:            PipelineBlocking,
	},
}
