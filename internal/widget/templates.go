package widget

const placeholderAlert = `<div class="stock-widget-alert">` +
	`This widget displays stock information on product pages. ` +
	`A product code is required to fetch stock data.</div>`

const widgetTemplate = `<div class="product-stock-widget"
	data-product-code="{{.ProductCode}}"
	data-endpoint="{{.EndpointURL}}"
	data-show-location="{{if .ShowLocation}}1{{else}}0{{end}}"
	data-show-quantity="{{if .ShowQuantity}}1{{else}}0{{end}}">
	{{- if .Title}}
	<h3 class="stock-title">{{.Title}}</h3>
	{{- end}}
	<div class="stock-loading">
		<span class="spinner"></span>
		Loading stock information...
	</div>
	<div class="stock-list" style="display: none;"></div>
	<div class="stock-error" style="display: none;"></div>
	<style>
		.product-stock-widget {
			padding: 20px;
			border: 1px solid #e0e0e0;
			border-radius: 4px;
			background-color: #fff;
		}
		.product-stock-widget .stock-title {
			margin-top: 0;
			margin-bottom: 15px;
		}
		.product-stock-widget .stock-loading {
			display: flex;
			align-items: center;
			gap: 10px;
		}
		.product-stock-widget .spinner {
			display: inline-block;
			width: 20px;
			height: 20px;
			border: 3px solid rgba(0, 0, 0, 0.1);
			border-radius: 50%;
			border-top-color: #333;
			animation: stock-spin 1s ease-in-out infinite;
		}
		@keyframes stock-spin {
			to { transform: rotate(360deg); }
		}
		.product-stock-widget .stock-item {
			display: flex;
			justify-content: space-between;
			padding: 10px;
			border-bottom: 1px solid #f0f0f0;
		}
		.product-stock-widget .stock-item:last-child {
			border-bottom: none;
		}
		.product-stock-widget .stock-location {
			font-weight: 600;
		}
		.product-stock-widget .stock-qty {
			color: #4CAF50;
			font-weight: 600;
		}
		.product-stock-widget .stock-qty.low-stock {
			color: #FF9800;
		}
		.product-stock-widget .stock-qty.out-of-stock {
			color: #F44336;
		}
		.product-stock-widget .stock-error {
			color: red;
		}
	</style>
	<script>{{.Script}}</script>
</div>
`

const previewTemplate = `<div class="product-stock-widget">
	{{- if .Title}}
	<h3 class="stock-title">{{.Title}}</h3>
	{{- end}}
	<div class="stock-list">
	{{- range .Rows}}
		<div class="stock-item">
			{{- if .Location}}
			<span class="stock-location">{{.Location}}</span>
			{{- end}}
			{{- if .QtyText}}
			<span class="stock-qty{{if .QtyClass}} {{.QtyClass}}{{end}}">{{.QtyText}}</span>
			{{- end}}
		</div>
	{{- end}}
	</div>
</div>
`
